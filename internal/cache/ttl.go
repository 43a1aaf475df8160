// Package cache guarda resultados de projeções em memória com expiração
package cache

import (
	"sync"
	"time"
)

// TTL é um cache em memória com expiração. Chaves são strings e valores []byte (JSON).
type TTL struct {
	mu    sync.RWMutex
	items map[string]item
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

type item struct {
	data []byte
	exp  time.Time
}

// New cria o cache e inicia a limpeza periódica; chame Stop para encerrá-la
func New(ttl time.Duration) *TTL {
	c := &TTL{
		items: make(map[string]item),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go c.cleanup()
	return c
}

func (c *TTL) cleanup() {
	interval := c.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-tick.C:
			c.evictExpired()
		}
	}
}

func (c *TTL) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, v := range c.items {
		if v.exp.Before(now) {
			delete(c.items, k)
		}
	}
}

// Get retorna o valor se presente e não expirado
func (c *TTL) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || it.exp.Before(c.now()) {
		return nil, false
	}
	return it.data, true
}

func (c *TTL) Set(key string, value []byte) {
	exp := c.now().Add(c.ttl)
	c.mu.Lock()
	c.items[key] = item{data: value, exp: exp}
	c.mu.Unlock()
}

func (c *TTL) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop encerra a limpeza periódica
func (c *TTL) Stop() {
	c.once.Do(func() { close(c.stop) })
}
