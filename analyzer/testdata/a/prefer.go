// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package a

import "fmt"

func basic() {
	var x = 1 // want "Variable 'x' can be made constant"
	fmt.Println(x)
}

func pair() {
	var w, h = 3, 4 // want "Variable 'w, h' can be made constant"
	fmt.Println(w * h)
}

func typed() {
	var name string = "fixkit" // want "Variable 'name' can be made constant"
	fmt.Println(name)
}

func group() {
	var ( // want "Variable 'a, b' can be made constant"
		a = 1
		b = "two"
	)
	fmt.Println(a, b)
}

func folded() {
	var size = len("abc") * 2 // want "Variable 'size' can be made constant"
	fmt.Println(size)
}

func counter() {
	var n = 0
	n++
	fmt.Println(n)
}

func escapes() {
	var v = 1
	p := &v
	fmt.Println(*p)
}

func boxed() {
	var i any = "text"
	fmt.Println(i)
}

func dynamic(s string) {
	var l = len(s)
	fmt.Println(l)
}

func closure() {
	var total = 0
	add := func(n int) { total += n }
	add(1)
	fmt.Println(total)
}

func suppressed() {
	var x = 1 //nolint:fixkit
	fmt.Println(x)
}

//nolint:fixkit // legacy code
func legacy() {
	var y = 2
	fmt.Println(y)
}
