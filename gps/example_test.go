package gps_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvseg/gps"
)

// ExampleTime_Add shows carry handling and ordering.
func ExampleTime_Add() {
	t := gps.Time{Sec: 794285000, Nano: 602350000}
	u := t.Add(10*time.Second + 500*time.Millisecond)

	fmt.Println(u)
	fmt.Println(u.Cmp(t), u.Sub(t))
	// Output:
	// 794285011.102350000
	// 1 10.5s
}

// ExampleParse shows the decimal text form and DecimalPlaces.
func ExampleParse() {
	t, err := gps.Parse("794285020.4")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(t.DecimalPlaces(), t.Format(t.DecimalPlaces()))
	// Output:
	// 3 794285020.400
}
