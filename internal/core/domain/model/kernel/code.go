package kernel

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// CodeGenerator produces one-time numeric codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// RandomCodeGenerator draws 6-digit codes from crypto/rand.
type RandomCodeGenerator struct{}

func (RandomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}

// SequenceCodeGenerator hands out the given codes in order and then repeats
// the last one. It makes code-dependent behavior reproducible.
type SequenceCodeGenerator struct {
	codes []string
	next  int
}

func NewSequenceCodeGenerator(codes ...string) *SequenceCodeGenerator {
	return &SequenceCodeGenerator{codes: codes}
}

func (g *SequenceCodeGenerator) Generate() (string, error) {
	if len(g.codes) == 0 {
		return "", errors.New("generate code: sequence is empty")
	}
	code := g.codes[min(g.next, len(g.codes)-1)]
	g.next++
	return code, nil
}
