package uid

import (
	"crypto/sha256"
	"os"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered int64 IDs using bwmarrin/snowflake.
//
// The node number is derived from the machine identity so multiple replicas
// do not collide without explicit coordination.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake builds a Snowflake generator with a machine-derived node ID.
func NewSnowflake() (*Snowflake, error) {
	node, err := snowflake.NewNode(machineNodeNumber())
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new snowflake ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

// machineNodeNumber hashes /etc/machine-id (or the hostname) into the
// snowflake node range [0, 1023].
func machineNodeNumber() int64 {
	src := ""
	if b, err := os.ReadFile("/etc/machine-id"); err == nil {
		src = strings.TrimSpace(string(b))
	}
	if src == "" {
		if h, err := os.Hostname(); err == nil {
			src = strings.TrimSpace(h)
		}
	}
	if src == "" {
		return 0
	}

	sum := sha256.Sum256([]byte(src))
	return int64(sum[0])<<2 | int64(sum[1])>>6
}
