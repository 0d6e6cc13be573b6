package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateContractNumber builds a contract reference like VTS-20250901-4821.
// The random suffix keeps same-day contracts distinct; the unique index on
// contractNumber is the real guarantee.
func GenerateContractNumber() string {
	return fmt.Sprintf("VTS-%s-%04d", time.Now().Format("20060102"), rand.Intn(10000))
}
