// Code generated by hand. DO NOT EDIT.

package generated

func answer() int {
	var x = 42 // want "Variable 'x' can be made constant"

	return x
}
