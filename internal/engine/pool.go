package engine

import (
	"math/big"
	"sync"
)

// getFloat returns a *big.Float with the given precision, rounding to
// nearest even. The value is stale; callers overwrite it. Dropping the
// precision to 0 first releases the old mantissa before the new
// precision is applied.
func getFloat(prec uint) *big.Float {
	var z *big.Float
	if v := floatPool.Get(); v != nil {
		z = v.(*big.Float)
	}
	if z == nil {
		z = new(big.Float)
	}
	z.SetPrec(0).SetPrec(prec).SetMode(big.ToNearestEven)
	return z
}

func putFloat(x *big.Float) {
	floatPool.Put(x)
}

var floatPool sync.Pool
