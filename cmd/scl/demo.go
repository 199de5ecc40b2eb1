package main

import (
	"fmt"

	"github.com/scl-format/go-scl/encode"
	"github.com/scl-format/go-scl/ir"

	"cloud.google.com/go/civil"
	"github.com/scott-cotton/cli"
	"github.com/shopspring/decimal"
)

const demoProfile = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Cras ac quam felis. " +
	"Nulla facilisi. Pellentesque id\nmi sapien. Duis luctus eget ex et congue."

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: demo takes no arguments", cli.ErrUsage)
	}
	return encode.Encode(demoValue(), cc.Out, cfg.encOpts(cc.Out)...)
}

// demoValue is a user listing with one entry of each commonly used kind.
func demoValue() *ir.Value {
	createdAt := civil.DateTime{
		Date: civil.Date{Year: 2023, Month: 2, Day: 17},
		Time: civil.Time{Hour: 14, Minute: 32, Second: 16},
	}
	user := ir.StructFromEntries(
		ir.Entry{Key: ir.NewIdWithMetadata("id", "uuid"), Value: ir.FromString("85026ad9-2b84-4b95-9389-cd4d6a2bd739")},
		ir.Entry{Key: ir.NewId("account"), Value: ir.FromDecimal(decimal.New(123456, -2))},
		ir.Entry{Key: ir.NewId("active"), Value: ir.FromBool(true)},
		ir.Entry{Key: ir.NewId("display_name"), Value: ir.FromString("John Doe")},
		ir.Entry{Key: ir.NewId("profile"), Value: ir.FromString(demoProfile)},
		ir.Entry{Key: ir.NewId("created_at"), Value: ir.FromCivilDateTime(createdAt)},
		ir.Entry{Key: ir.NewId("secret"), Value: ir.FromBinary(ir.BlobFromBytes([]byte("Not a secret")))},
	)
	return ir.StructFromEntries(
		ir.Entry{Key: ir.NewId("total_count"), Value: ir.FromInt(1)},
		ir.Entry{Key: ir.NewIdWithMetadata("items", "user"), Value: ir.ListFromValues(user)},
	)
}
