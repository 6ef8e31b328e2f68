package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("SISTEMALOJA_TEST_MODE") == "" {
			_ = os.Setenv("SISTEMALOJA_TEST_MODE", "1")
		}
	})
}
