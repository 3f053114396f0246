package bookings

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// AtomicSeatClaims holds short-lived per-seat claims in Redis so overlapping
// booking attempts for the same show fail fast before touching the database.
// The database transaction stays authoritative; losing Redis only loses the
// fast path.
type AtomicSeatClaims struct {
	redis *redis.Client
}

// NewAtomicSeatClaims creates a new atomic seat claim handler
func NewAtomicSeatClaims(redisClient *redis.Client) *AtomicSeatClaims {
	return &AtomicSeatClaims{
		redis: redisClient,
	}
}

// Lua script for atomic multi-seat claiming - prevents race conditions
var luaAtomicSeatClaim = redis.NewScript(`
-- KEYS[1] = show_id
-- ARGV[1] = user_id
-- ARGV[2] = ttl_seconds
-- ARGV[3..N] = seat labels

local show_id = KEYS[1]
local user_id = ARGV[1]
local ttl = tonumber(ARGV[2])

-- Check if all seats are unclaimed
for i = 3, #ARGV do
    local claim_key = "seat_claim:" .. show_id .. ":" .. ARGV[i]

    if redis.call("EXISTS", claim_key) == 1 then
        -- Seat is already claimed, return failure with the offending label
        return {0, ARGV[i]}
    end
end

-- All seats are free, claim them atomically
for i = 3, #ARGV do
    local claim_key = "seat_claim:" .. show_id .. ":" .. ARGV[i]
    redis.call("SETEX", claim_key, ttl, user_id)
end

return {1, "success"}
`)

// Lua script for atomic claim release
var luaAtomicSeatRelease = redis.NewScript(`
-- KEYS[1] = show_id
-- ARGV[1..N] = seat labels

local show_id = KEYS[1]
local released = 0

for i = 1, #ARGV do
    local claim_key = "seat_claim:" .. show_id .. ":" .. ARGV[i]
    released = released + redis.call("DEL", claim_key)
end

return released
`)

// ClaimSeats atomically claims every seat label for a show, or none of them.
// A conflicting claim surfaces as ErrSeatConflict with the offending label.
func (a *AtomicSeatClaims) ClaimSeats(ctx context.Context, showID, userID string, seats []string, ttl time.Duration) error {
	if a.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	keys := []string{showID}
	args := []interface{}{
		userID,
		strconv.Itoa(int(ttl.Seconds())),
	}
	for _, seat := range seats {
		args = append(args, seat)
	}

	// Script.Run uses EVALSHA and falls back to EVAL when not yet loaded
	result, err := luaAtomicSeatClaim.Run(ctx, a.redis, keys, args...).Result()
	if err != nil {
		return fmt.Errorf("failed to execute atomic seat claim: %w", err)
	}

	resultArray, ok := result.([]interface{})
	if !ok || len(resultArray) != 2 {
		return fmt.Errorf("unexpected result format from Lua script")
	}

	success, ok := resultArray[0].(int64)
	if !ok {
		return fmt.Errorf("invalid success flag in Lua script result")
	}

	if success == 0 {
		if conflictSeat, ok := resultArray[1].(string); ok {
			return fmt.Errorf("%w: %s", ErrSeatConflict, conflictSeat)
		}
		return ErrSeatConflict
	}

	return nil
}

// ReleaseSeats drops the claims for the given seat labels. Used when the
// database rejects a booking after the fast path accepted it, and when a
// booking is deleted so the labels become bookable before the TTL expires.
func (a *AtomicSeatClaims) ReleaseSeats(ctx context.Context, showID string, seats []string) (int, error) {
	if a.redis == nil {
		return 0, fmt.Errorf("redis client not available")
	}

	args := make([]interface{}, 0, len(seats))
	for _, seat := range seats {
		args = append(args, seat)
	}

	result, err := luaAtomicSeatRelease.Run(ctx, a.redis, []string{showID}, args...).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to execute atomic seat release: %w", err)
	}

	released, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("invalid released count in Lua script result")
	}

	return int(released), nil
}

// PreloadScripts loads Lua scripts into Redis for better performance
func (a *AtomicSeatClaims) PreloadScripts(ctx context.Context) error {
	if a.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	if err := luaAtomicSeatClaim.Load(ctx, a.redis).Err(); err != nil {
		return fmt.Errorf("failed to load seat claim script: %w", err)
	}

	if err := luaAtomicSeatRelease.Load(ctx, a.redis).Err(); err != nil {
		return fmt.Errorf("failed to load seat release script: %w", err)
	}

	return nil
}
