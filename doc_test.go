package xss_test

import (
	"fmt"

	"github.com/nsarray/xss"
)

func Example() {
	text := []byte("\x00banana\x00")
	pss := xss.PSSArray[uint32](text, xss.DefaultThreshold)
	lyndon := xss.LyndonArray[uint32](text, xss.DefaultThreshold)
	fmt.Println(pss[1:7])
	fmt.Println(lyndon[1:7])
	// Output:
	// [0 0 2 0 4 0]
	// [1 2 1 2 1 1]
}
