// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncmap

import (
	"fmt"
	"sync"
	"testing"

	"go.astrophena.name/botapi/internal/testutil"
)

func TestMap(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int]()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Store(fmt.Sprint(i), i)
		}()
	}
	wg.Wait()
	testutil.AssertEqual(t, m.Len(), 50)

	v, ok := m.Load("7")
	testutil.AssertEqual(t, v, 7)
	testutil.AssertEqual(t, ok, true)

	m.Delete("7")
	_, ok = m.Load("7")
	testutil.AssertEqual(t, ok, false)
	testutil.AssertEqual(t, m.Len(), 49)
}
