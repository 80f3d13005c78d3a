package tensor_test

import (
	"fmt"

	"github.com/hanzikit/radicalgebra/radical"
	"github.com/hanzikit/radicalgebra/tensor"
)

// ExampleOuterProduct prints the rank-2 Wu Xing diagonal: each element
// combined with itself.
func ExampleOuterProduct() {
	res, err := tensor.OuterProduct(radical.WuXing(), 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	set := res.RadicalSet()
	for i := 0; i < set.Len(); i++ {
		cell, _ := res.At(i, i)
		fmt.Printf("%c+%c = %s\n", set.At(i), set.At(i), cell)
	}
	// Output:
	// 金+金 = 鍂
	// 木+木 = 林
	// 水+水 = 沝
	// 火+火 = 炎
	// 土+土 = 圭
}

// ExampleOuterProduct_rank3 shows nested hits on the rank-3 diagonal.
func ExampleOuterProduct_rank3() {
	res, err := tensor.OuterProduct(radical.WuXing(), 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	cell, _ := res.At(0, 0, 0)
	fmt.Println("金×3 =", cell)
	// Output:
	// 金×3 = 鑫
}
