package chaintesting

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	mathrand "math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-hashchain/byteable"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	Cfg TestConfig

	rng       *mathrand.Rand
	timestamp uint64
	nonce     uint64
}

type TestConfig struct {
	// We seed the RNG with StartTime. It is normal to force it to some fixed
	// value so that the generated payloads are the same from run to run.
	StartTime uint64
	// BlockInterval is added to the timestamp for each generated block
	BlockInterval   uint64
	TestLabelPrefix string
	// Issuer names the sealing party, defaults to a random uuid
	Issuer string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		Cfg: cfg,
	}
	logger.New("NOOP")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)

	if c.Cfg.Issuer == "" {
		c.Cfg.Issuer = uuid.NewString()
	}
	if c.Cfg.BlockInterval == 0 {
		c.Cfg.BlockInterval = 1
	}
	c.rng = mathrand.New(mathrand.NewSource(int64(cfg.StartTime)))
	c.timestamp = cfg.StartTime
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// NextHeader returns a strictly increasing timestamp and nonce pair for the
// next generated block.
func (c *TestContext) NextHeader() (timestamp uint64, nonce uint64) {
	timestamp = c.timestamp
	nonce = c.nonce
	c.timestamp += c.Cfg.BlockInterval
	c.nonce++
	return timestamp, nonce
}

// GeneratePayload returns n pseudo random, distinct string leaves. The
// sequence is fixed by the configured StartTime.
func (c *TestContext) GeneratePayload(n int) []byteable.String {
	payload := make([]byteable.String, n)
	for i := range payload {
		payload[i] = byteable.String(fmt.Sprintf("%s-%d-%016x", c.Cfg.TestLabelPrefix, i, c.rng.Uint64()))
	}
	return payload
}

func (c *TestContext) GenerateECKey(curve elliptic.Curve) *ecdsa.PrivateKey {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(c.T, err)
	return privateKey
}
