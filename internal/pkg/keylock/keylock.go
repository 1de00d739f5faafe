// keylock — взаимное исключение по строковому/UUID ключу внутри процесса.
//
// Используется сервисом, чтобы операции записи над пунктами одной статьи
// выполнялись строго последовательно, а над разными статьями — параллельно.
package keylock

import (
	"context"
	"sync"
)

// Locker — набор мьютексов, создаваемых по требованию и удаляемых,
// когда на ключ больше никто не претендует.
type Locker[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*refLock
}

type refLock struct {
	ch   chan struct{}
	refs int
}

// New создаёт пустой Locker.
func New[K comparable]() *Locker[K] {
	return &Locker[K]{locks: make(map[K]*refLock)}
}

// Lock захватывает ключ, ожидая освобождения не дольше, чем живёт ctx.
// Возвращает функцию освобождения; её вызов обязателен и идемпотентен.
func (l *Locker[K]) Lock(ctx context.Context, key K) (func(), error) {
	l.mu.Lock()
	rl, ok := l.locks[key]
	if !ok {
		rl = &refLock{ch: make(chan struct{}, 1)}
		l.locks[key] = rl
	}
	rl.refs++
	l.mu.Unlock()

	select {
	case rl.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, rl)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-rl.ch
			l.release(key, rl)
		})
	}, nil
}

// Len возвращает число ключей, на которые сейчас кто-то претендует.
func (l *Locker[K]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}

func (l *Locker[K]) release(key K, rl *refLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rl.refs--
	if rl.refs == 0 {
		delete(l.locks, key)
	}
}
