package game

import "golang.org/x/exp/rand"

// Dice produces move values uniformly drawn from MinRoll..MaxRoll.
type Dice interface {
	Roll() int
}

type randomDice struct {
	rng *rand.Rand
}

// NewRandomDice returns a seeded dice source; equal seeds replay equal sequences.
func NewRandomDice(seed uint64) Dice {
	return &randomDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *randomDice) Roll() int {
	return d.rng.Intn(MaxRoll-MinRoll+1) + MinRoll
}

// FixedDice replays a fixed sequence of rolls, cycling when exhausted.
type FixedDice struct {
	rolls []int
	next  int
}

func NewFixedDice(rolls ...int) *FixedDice {
	if len(rolls) == 0 {
		panic("fixed dice need at least one roll")
	}
	return &FixedDice{rolls: rolls}
}

func (d *FixedDice) Roll() int {
	roll := d.rolls[d.next%len(d.rolls)]
	d.next++
	return roll
}
