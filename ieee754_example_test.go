// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
)

func ExampleNextafter() {
	fmt.Println(Nextafter(1, 2))
	fmt.Println(Nextafter(0, -1))
	fmt.Println(Nextafter32(1, 2))

	v, st := NextafterStatus(math.MaxFloat64, math.Inf(1))
	fmt.Println(v, st)

	fmt.Println(Copysign(3, -1), Signbit(math.Copysign(0, -1)))

	// Output:
	// 1.0000000000000002
	// -5e-324
	// 1.0000001
	// +Inf overflow|inexact
	// -3 true
}

func ExampleFloat80_Nextafter() {
	x := Float80FromFloat64(1)
	next := x.Nextafter(Float80FromFloat64(2))
	se, manh, manl := next.Words()
	fmt.Printf("%x %x %x\n", se, manh, manl)
	fmt.Println(next.Float64() == 1, next.Classify())

	tiny, st := Float80{}.NextafterStatus(Inf80(-1))
	fmt.Println(tiny.Signbit(), tiny.Classify(), st)

	// Output:
	// 3fff 80000000 1
	// true normal
	// true subnormal underflow|inexact
}
