package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source é a fonte de aleatoriedade usada pelos geradores
type Source interface {
	IntN(n int) int
	Float64() float64
	Perm(n int) []int
}

// LockedSource é uma Source segura para uso concorrente
type LockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New cria uma nova fonte determinística a partir de uma semente
func New(seed uint64) *LockedSource {
	return &LockedSource{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewFromTime cria uma nova fonte semeada pelo relógio
func NewFromTime() *LockedSource {
	return New(uint64(time.Now().UnixNano()))
}

// IntN retorna um inteiro em [0, n)
func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Float64 retorna um float em [0.0, 1.0)
func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Perm retorna uma permutação de [0, n)
func (s *LockedSource) Perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Perm(n)
}
