// Package ir provides the in-memory value model for SCL documents.
//
// # Overview
//
// An SCL document is a tree of *Value. Every value holds exactly one of a
// closed set of variants, reported by Value.Type:
//
//   - Leaf variants: Bool, Int (int64), Float (float64), Decimal
//     (arbitrary precision), String, Date, Time, DateTime (a UTC instant)
//     and Binary (a *Blob)
//   - Container variants: List (ordered, duplicates allowed) and Struct
//     (a mapping from Id to Value with unique keys)
//
// The package does not parse text. Parsers and builders live elsewhere and
// only use the constructors below.
//
// # Creating Values
//
//	doc := ir.StructFromEntries(
//	    ir.Entry{Key: ir.NewId("total_count"), Value: ir.FromInt(1)},
//	    ir.Entry{Key: ir.NewIdWithMetadata("items", "user"), Value: ir.ListFromValues(
//	        ir.FromString("a"),
//	        ir.FromDecimal(decimal.New(123456, -2)),
//	    )},
//	)
//
// Integer conversion is total: FromInt narrows 64 bit unsigned values and
// FromBigInt truncates 128 bit values to their low 64 bits. FromDateTime
// normalizes to UTC when the value is created; the original offset is
// lost.
//
// # Ownership
//
// A value tree is a strict tree. Append and Set take ownership of the
// values passed to them; a value already owned by another container, or
// one that would create a cycle, is deep copied instead. Values are not
// safe for concurrent use; Clone a tree before handing it to another
// goroutine.
//
// # Ids and Blobs
//
// Id is an identifier with optional metadata, used as a struct key. Blob
// is a byte buffer with optional metadata, displayed as "metadata:base64".
// DecodeBase64 accepts pure base64 only, so the display form of a blob
// with metadata does not decode back to the blob.
//
// # Equality and Hashing
//
// Equal implements canonical equality and Value.Hash is consistent with
// it. Floats are compared through their BitTriplet rather than IEEE
// comparison: NaN equals itself, distinct NaN payloads differ, and +0 and
// -0 differ. Struct equality and hashing ignore insertion order. ValueSet
// uses both to hold values as set members.
package ir
