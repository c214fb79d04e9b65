package filter

import (
	"sync"

	"github.com/chewxy/math32"
)

// GaussianKernel returns a normalized 1-D Gaussian kernel with standard
// deviation sigma and size 2*ceil(3*sigma)+1. sigma <= 0 yields [1].
func GaussianKernel(sigma float32) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := int(math32.Ceil(sigma * 3))
	kernel := make([]float32, half*2+1)

	twoSigmaSq := 2 * sigma * sigma
	var sum float32
	for i := range kernel {
		x := float32(i - half)
		v := math32.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// kernelCache memoizes kernels keyed by sigma at 0.01 precision.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = &kernelCache{cache: make(map[int][]float32), maxLen: 64}

func (c *kernelCache) get(sigma float32) []float32 {
	key := int(sigma * 100)

	c.mu.RLock()
	k, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(sigma)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		n := 0
		for key := range c.cache {
			delete(c.cache, key)
			if n++; n >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = k
	c.mu.Unlock()
	return k
}

// CachedGaussianKernel returns a shared kernel for sigma. Callers must not
// modify it.
func CachedGaussianKernel(sigma float32) []float32 {
	return defaultKernelCache.get(sigma)
}
