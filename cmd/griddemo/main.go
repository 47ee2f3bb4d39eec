package main

import (
	"errors"
	"fmt"
	"os"

	"gridin"
)

func main() {
	fmt.Println("Enter 5 values between -100 and 100:")
	arr, err := gridin.InputFloatArray(5, gridin.VRange(-100, 100))
	if err != nil {
		if errors.Is(err, gridin.ErrCanceled) {
			fmt.Println("canceled")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("array:", arr)

	fmt.Println("Enter a 3x3 integer matrix:")
	mat, err := gridin.InputIntMatrix(3, 3, nil)
	if err != nil {
		if errors.Is(err, gridin.ErrCanceled) {
			fmt.Println("canceled")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, row := range mat {
		fmt.Println(row)
	}
}
