package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
)

// Func — кэшируемая функция чтения с одним аргументом.
type Func[A, R any] func(ctx context.Context, arg A) (R, error)

// Wrap оборачивает fn кэшем c.
//
// Поведение:
//   - ключ строится из аргумента через keyFn;
//   - попадание в кэш — fn не вызывается;
//   - промах — fn вызывается один раз даже при конкурентных промахах по одному ключу
//     (singleflight), результат сохраняется на ttl и возвращается;
//   - ошибки fn не кэшируются;
//   - результат загрузки, во время которой прошла инвалидация или очистка, возвращается
//     её участникам, но в кэш не попадает; промах после инвалидации начинает новую загрузку;
//   - общая загрузка не отменяется вместе с контекстом одного из ожидающих (дедлайн
//     первого вызова сохраняется), каждый вызывающий ждёт её не дольше своего ctx.
//
// name используется только в сообщениях об ошибках.
func Wrap[A, R any](c *Cache, name string, keyFn func(A) string, ttl time.Duration, fn Func[A, R]) Func[A, R] {
	var group singleflight.Group

	return func(ctx context.Context, arg A) (R, error) {
		var zero R

		key := keyFn(arg)

		if v, ok := c.Get(key); ok {
			if r, ok := v.(R); ok {
				return r, nil
			}
			// под ключом лежит значение чужого типа — перезапишем его.
		}

		gen := c.Generation()

		// поколение в ключе группы: вызов после инвалидации не присоединяется к устаревшей загрузке.
		ch := group.DoChan(key+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
			loadCtx, cancel := detach(ctx)
			defer cancel()

			r, err := fn(loadCtx, arg)
			if err != nil {
				return nil, err
			}
			c.setIfGen(key, r, ttl, gen)
			return r, nil
		})

		var res singleflight.Result
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case res = <-ch:
		}

		if res.Err != nil {
			return zero, res.Err
		}

		r, ok := res.Val.(R)
		if !ok {
			return zero, fmt.Errorf("cache.%s: unexpected value type %T", name, res.Val)
		}

		return r, nil
	}
}

// detach отвязывает загрузку от отмены ctx, сохраняя его значения (логгер) и дедлайн.
func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	base := context.WithoutCancel(ctx)
	if dl, ok := ctx.Deadline(); ok {
		return context.WithDeadline(base, dl)
	}
	return context.WithCancel(base)
}
