package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Availability é um cache curto de respostas de disponibilidade.
// Qualquer escrita de agendamento invalida o dia inteiro do negócio.
// Opcional: sem REDIS_ADDR o serviço opera sem cache.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string) *Availability {
	if addr == "" {
		return nil
	}

	return &Availability{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 60 * time.Second,
	}
}

func key(businessID uint, date string, serviceID uint, staffID *uint) string {
	staff := "shared"
	if staffID != nil {
		staff = fmt.Sprintf("%d", *staffID)
	}
	return fmt.Sprintf("avail:%d:%s:%d:%s", businessID, date, serviceID, staff)
}

func dayPattern(businessID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s:*", businessID, date)
}

func (a *Availability) Get(
	ctx context.Context,
	businessID uint,
	date string,
	serviceID uint,
	staffID *uint,
) ([]byte, bool) {

	if a == nil {
		return nil, false
	}

	payload, err := a.rdb.Get(ctx, key(businessID, date, serviceID, staffID)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (a *Availability) Set(
	ctx context.Context,
	businessID uint,
	date string,
	serviceID uint,
	staffID *uint,
	payload []byte,
) {
	if a == nil {
		return
	}
	// cache é melhor-esforço; erro aqui não afeta a resposta
	a.rdb.Set(ctx, key(businessID, date, serviceID, staffID), payload, a.ttl)
}

// InvalidateDay remove todas as entradas do negócio naquele dia.
func (a *Availability) InvalidateDay(ctx context.Context, businessID uint, date string) {
	if a == nil {
		return
	}

	iter := a.rdb.Scan(ctx, 0, dayPattern(businessID, date), 100).Iterator()
	for iter.Next(ctx) {
		a.rdb.Del(ctx, iter.Val())
	}
}
