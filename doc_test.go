package ptape_test

import (
	"fmt"

	"github.com/corynth/ptape"
)

func Example() {
	tape, err := ptape.ParseWindows1252([]byte(`fleet={name="First Fleet" size=12}`))
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	reader := tape.Reader()
	for {
		key, _, value, ok := reader.NextField()
		if !ok {
			break
		}
		if value.Kind != ptape.KindObject {
			fmt.Println(key.String(), "=", value.Scalar.String())
			continue
		}
		child := tape.ChildReader(reader.ValuePos())
		for {
			ckey, _, cvalue, ok := child.NextField()
			if !ok {
				break
			}
			fmt.Println(key.String()+"."+ckey.String(), "=", cvalue.Scalar.String())
		}
	}

	// Output:
	// fleet.name = First Fleet
	// fleet.size = 12
}
