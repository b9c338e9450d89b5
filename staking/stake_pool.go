package staking

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/holiman/uint256"
)

// EnrollmentWindow is the fixed period after pool creation during which
// staking is permitted.
const EnrollmentWindow = 7 * 24 * time.Hour

// ErrDeadlineExceeded is returned by Stake once the enrollment window has
// closed. The window closes for everyone at once; there is no per-participant
// retry.
var ErrDeadlineExceeded = errors.New("staking deadline exceeded: enrollment window is closed")

// RewardShare is one participant's slice of the reward pool.
type RewardShare struct {
	Participant string `json:"participant"`
	Amount      uint64 `json:"amount"`
}

// StakePool tracks a fixed reward pool and one stake per participant.
// Stakes are accepted only while the enrollment window is open; rewards are
// distributed proportionally to each participant's share of the total stake.
//
// The pool holds no durable state and performs no I/O. A single RWMutex
// gives it the single-writer/multi-reader discipline its contract requires
// when embedded in a concurrent host.
type StakePool struct {
	mu          sync.RWMutex
	totalReward uint64
	stakes      map[string]uint64
	createdAt   time.Time
	clock       Clock
}

// NewStakePool creates a pool distributing totalReward, with the enrollment
// window anchored at the current wall-clock time.
func NewStakePool(totalReward uint64) *StakePool {
	return NewStakePoolWithClock(totalReward, SystemClock{})
}

// NewStakePoolWithClock creates a pool reading time from clock. Tests and
// simulation drivers use this with a ManualClock to move through the window
// without waiting real days.
func NewStakePoolWithClock(totalReward uint64, clock Clock) *StakePool {
	return &StakePool{
		totalReward: totalReward,
		stakes:      make(map[string]uint64),
		createdAt:   clock.Now(),
		clock:       clock,
	}
}

// Stake records amount for participant. A repeated stake for the same
// identity overwrites the previous amount; stakes never accumulate.
// Once the enrollment window has closed it returns ErrDeadlineExceeded and
// leaves the stake book untouched.
func (sp *StakePool) Stake(participant string, amount uint64) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.clock.Now().Before(sp.createdAt.Add(EnrollmentWindow)) {
		return ErrDeadlineExceeded
	}

	sp.stakes[participant] = amount
	return nil
}

// DistributeRewards computes each participant's proportional share of the
// reward pool: floor(stake * totalReward / totalStaked), in 256-bit
// intermediate arithmetic so the product cannot overflow. Truncation dust is
// dropped, so the distributed sum may fall short of the pool by up to
// len(stakes)-1 units.
//
// The result is sorted ascending by participant identity. It is read-only
// and idempotent, and callable before or after the window closes. An empty
// book or an all-zero stake book yields an empty result; no division is
// attempted.
func (sp *StakePool) DistributeRewards() []RewardShare {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	rewards := make([]RewardShare, 0, len(sp.stakes))

	totalStaked := new(uint256.Int)
	for _, amount := range sp.stakes {
		totalStaked.Add(totalStaked, uint256.NewInt(amount))
	}
	if totalStaked.IsZero() {
		return rewards
	}

	totalReward := uint256.NewInt(sp.totalReward)
	for participant, amount := range sp.stakes {
		reward := new(uint256.Int).Mul(uint256.NewInt(amount), totalReward)
		reward.Div(reward, totalStaked)
		// amount <= totalStaked, so reward <= totalReward and fits uint64.
		rewards = append(rewards, RewardShare{
			Participant: participant,
			Amount:      reward.Uint64(),
		})
	}

	sort.Slice(rewards, func(i, j int) bool {
		return rewards[i].Participant < rewards[j].Participant
	})

	return rewards
}

// TotalReward returns the fixed reward pool size.
func (sp *StakePool) TotalReward() uint64 {
	return sp.totalReward
}

// TotalStaked returns the sum of all recorded stakes. The sum is carried in
// 256 bits; individual stakes are uint64 but their sum need not be.
func (sp *StakePool) TotalStaked() *uint256.Int {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	total := new(uint256.Int)
	for _, amount := range sp.stakes {
		total.Add(total, uint256.NewInt(amount))
	}
	return total
}

// StakeOf returns the recorded stake for participant.
func (sp *StakePool) StakeOf(participant string) (uint64, bool) {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	amount, ok := sp.stakes[participant]
	return amount, ok
}

// Participants returns the number of recorded stakes.
func (sp *StakePool) Participants() int {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return len(sp.stakes)
}

// CreatedAt returns the pool's creation time, the anchor of the enrollment
// window.
func (sp *StakePool) CreatedAt() time.Time {
	return sp.createdAt
}

// Deadline returns the instant the enrollment window closes. Stakes at or
// after this instant are rejected.
func (sp *StakePool) Deadline() time.Time {
	return sp.createdAt.Add(EnrollmentWindow)
}

// Closed reports whether the enrollment window has closed.
func (sp *StakePool) Closed() bool {
	return !sp.clock.Now().Before(sp.Deadline())
}
