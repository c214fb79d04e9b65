package filter

import "testing"

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		sigma    float32
		wantSize int
	}{
		{0, 1},
		{-2, 1},
		{1, 7},
		{2, 13},
		{4, 25},
		{0.5, 5},
	}
	for _, tt := range tests {
		k := GaussianKernel(tt.sigma)
		if len(k) != tt.wantSize {
			t.Errorf("GaussianKernel(%v) size = %d, want %d", tt.sigma, len(k), tt.wantSize)
			continue
		}
		var sum float32
		for _, v := range k {
			sum += v
		}
		if !approx(sum, 1, 1e-5) {
			t.Errorf("GaussianKernel(%v) sum = %v, want 1", tt.sigma, sum)
		}
		half := len(k) / 2
		for i := 0; i < half; i++ {
			if !approx(k[i], k[len(k)-1-i], 1e-7) {
				t.Errorf("GaussianKernel(%v) not symmetric at %d", tt.sigma, i)
			}
		}
	}
}

func TestCachedGaussianKernelShared(t *testing.T) {
	a := CachedGaussianKernel(3)
	b := CachedGaussianKernel(3)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel should return the cached slice")
	}
}

func TestKernelCacheEvicts(t *testing.T) {
	c := &kernelCache{cache: make(map[int][]float32), maxLen: 4}
	for i := range 10 {
		c.get(float32(i) + 1)
	}
	if len(c.cache) > 4 {
		t.Errorf("cache size = %d, want <= 4", len(c.cache))
	}
}
