package shortuuid_test

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vdparikh/shortuuid"
)

func ExampleShorten() {
	id := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")

	for _, a := range []shortuuid.Alphabet{shortuuid.Base36, shortuuid.Base58, shortuuid.Base62, shortuuid.Base90} {
		short, err := shortuuid.Shorten(id, a)
		if err != nil {
			panic(err)
		}
		fmt.Printf("base%d %s\n", a.Base(), short)
	}
	// Output:
	// base36 eh20m2rvgvw6snhr754ezwsqh
	// base58 wbZ3JKfFLhyPheLFGhcSwM
	// base62 7rke2SAWaicSeSYzkhww6R
	// base90 o58G5Vo0jOi!#Oi2_gaR
}

func ExampleExpand() {
	id, err := shortuuid.Expand("7rke2SAWaicSeSYzkhww6R", shortuuid.Base62)
	if err != nil {
		panic(err)
	}
	fmt.Println(id)
	// Output: f47ac10b-58cc-4372-a567-0e02b2c3d479
}

func ExampleConvert() {
	out, err := shortuuid.Convert("1a2b3c", shortuuid.Base16, shortuuid.Base62)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	_, err = shortuuid.Convert("g0", shortuuid.Base16, shortuuid.Base62)
	fmt.Println(errors.Is(err, shortuuid.ErrIncompatibleValue))
	// Output:
	// 7c9m
	// true
}

func ExamplePadShort() {
	short, _ := shortuuid.Shorten(uuid.Nil, shortuuid.Base62)
	padded, _ := shortuuid.PadShort(short, shortuuid.Base62)
	fmt.Println(short)
	fmt.Println(padded)
	// Output:
	// 0
	// 0000000000000000000000
}
