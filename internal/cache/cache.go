// cache — процессный кэш с TTL на запись, фоновой очисткой и явной инвалидацией.
//
// Кэш создаётся явно (New) и внедряется в зависимые компоненты; фоновая очистка
// стартует в New и останавливается в Close, после чего кэш пуст.
package cache

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultSweepInterval — период фоновой очистки по умолчанию.
const DefaultSweepInterval = 5 * time.Minute

// Причины вытеснения записей (label метрики evictions).
const (
	reasonExpired     = "expired"
	reasonInvalidated = "invalidated"
	reasonCleared     = "cleared"
)

// Options — параметры кэша.
type Options struct {
	// SweepInterval — период фоновой очистки; <=0 -> DefaultSweepInterval.
	SweepInterval time.Duration
	// Clock — источник времени; nil -> time.Now.
	Clock func() time.Time
	// Registerer — куда регистрировать метрики; nil -> метрики не регистрируются.
	Registerer prometheus.Registerer
	// Logger — логгер фоновой очистки; nil -> slog.Default().
	Logger *slog.Logger
}

// Cache — потокобезопасный key-value кэш с TTL на каждую запись.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	// gen растёт при каждой инвалидации и очистке; по нему Wrap отбрасывает
	// результаты загрузок, начатых до записи.
	gen uint64

	now      func() time.Time
	interval time.Duration
	log      *slog.Logger
	metrics  *metrics

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type entry struct {
	value     any
	createdAt time.Time
	ttl       time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

// Stats — снимок состояния кэша.
type Stats struct {
	Size int
	Keys []string
}

// New создаёт кэш и запускает фоновую очистку.
func New(opts Options) *Cache {
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Cache{
		entries:  make(map[string]entry),
		now:      opts.Clock,
		interval: opts.SweepInterval,
		log:      opts.Logger,
		metrics:  newMetrics(opts.Registerer),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	go c.janitor()

	return c
}

// Set сохраняет value под key на ttl, безусловно перезаписывая прежнюю запись.
// ttl <= 0 означает «не кэшировать»: прежняя запись удаляется.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(key, value, ttl)
}

// Generation возвращает текущее поколение кэша.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.gen
}

// setIfGen сохраняет значение, только если с момента gen не было ни одной
// инвалидации или очистки. Возвращает false, если значение отброшено.
func (c *Cache) setIfGen(key string, value any, ttl time.Duration, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return false
	}

	c.store(key, value, ttl)
	return true
}

// store — запись под уже взятым c.mu.
func (c *Cache) store(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		delete(c.entries, key)
		c.metrics.entries.Set(float64(len(c.entries)))
		return
	}

	c.entries[key] = entry{
		value:     value,
		createdAt: c.now(),
		ttl:       ttl,
	}
	c.metrics.entries.Set(float64(len(c.entries)))
}

// Get возвращает значение, если запись есть и её возраст не превышает TTL.
// Просроченная запись удаляется сразу, не дожидаясь фоновой очистки.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.metrics.misses.Inc()
		return nil, false
	}

	if e.expired(c.now()) {
		c.mu.Lock()
		// запись могла быть перезаписана между RUnlock и Lock.
		if cur, ok := c.entries[key]; ok && cur.expired(c.now()) {
			delete(c.entries, key)
			c.metrics.evictions.WithLabelValues(reasonExpired).Inc()
			c.metrics.entries.Set(float64(len(c.entries)))
		}
		c.mu.Unlock()

		c.metrics.misses.Inc()
		return nil, false
	}

	c.metrics.hits.Inc()
	return e.value, true
}

// Delete удаляет запись по ключу. Возвращает true, если запись была.
func (c *Cache) Delete(key string) bool {
	return c.Invalidate(Exact(key)) > 0
}

// Invalidate удаляет все записи, ключ которых удовлетворяет match.
// Возвращает число удалённых записей.
func (c *Cache) Invalidate(match Matcher) int {
	if match == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// поколение растёт даже без удалённых записей: совпадающий ключ
	// может как раз загружаться.
	c.gen++

	var n int
	for k := range c.entries {
		if match(k) {
			delete(c.entries, k)
			n++
		}
	}

	if n > 0 {
		c.metrics.evictions.WithLabelValues(reasonInvalidated).Add(float64(n))
		c.metrics.entries.Set(float64(len(c.entries)))
	}

	return n
}

// InvalidatePrefix — сокращение для Invalidate(Prefix(prefix)).
func (c *Cache) InvalidatePrefix(prefix string) int {
	return c.Invalidate(Prefix(prefix))
}

// Clear безусловно очищает кэш.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++

	if n := len(c.entries); n > 0 {
		c.metrics.evictions.WithLabelValues(reasonCleared).Add(float64(n))
	}
	c.entries = make(map[string]entry)
	c.metrics.entries.Set(0)
}

// Sweep удаляет все просроченные записи и возвращает их количество.
func (c *Cache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
			n++
		}
	}

	if n > 0 {
		c.metrics.evictions.WithLabelValues(reasonExpired).Add(float64(n))
		c.metrics.entries.Set(float64(len(c.entries)))
	}

	return n
}

// Len возвращает число записей (включая ещё не вычищенные просроченные).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats возвращает размер и отсортированный список ключей.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	c.mu.RUnlock()

	sort.Strings(keys)

	return Stats{Size: len(keys), Keys: keys}
}

// Close останавливает фоновую очистку, дожидается её завершения и очищает кэш.
// Повторные вызовы безопасны.
func (c *Cache) Close() {
	c.closeOnce.Do(func() {
		close(c.stop)
		<-c.done
		c.Clear()
	})
}

// janitor — фоновая очистка по тикеру, независимая от Get/Set.
func (c *Cache) janitor() {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			if n := c.Sweep(); n > 0 {
				c.log.Debug("cache_sweep", slog.Int("evicted", n))
			}
		}
	}
}

// Matcher — предикат выбора ключей для инвалидации.
type Matcher func(key string) bool

// Exact совпадает ровно с одним ключом.
func Exact(key string) Matcher {
	return func(k string) bool { return k == key }
}

// Prefix совпадает со всеми ключами, начинающимися с prefix.
func Prefix(prefix string) Matcher {
	return func(k string) bool { return strings.HasPrefix(k, prefix) }
}

// AnyOf совпадает, если совпадает хотя бы один из matchers.
func AnyOf(matchers ...Matcher) Matcher {
	return func(k string) bool {
		for _, m := range matchers {
			if m != nil && m(k) {
				return true
			}
		}
		return false
	}
}
