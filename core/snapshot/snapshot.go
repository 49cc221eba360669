// Package snapshot encodes RIPEMD hasher states so that hashing can be
// suspended in one place and resumed in another.
//
// The binary form is the multihash code of the variant as a varint, followed
// by the dag-cbor encoding of the chain value, pending bytes and length.
package snapshot

import (
	_ "embed"
	"fmt"
	"math"
	"sync"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/schema"
	"github.com/multiformats/go-multibase"
	"github.com/storacha/go-ripemd/core/dag/cbor"
	mhripemd "github.com/storacha/go-ripemd/core/ipld/hash/ripemd"
	"github.com/storacha/go-ripemd/core/multiformat"
	"github.com/storacha/go-ripemd/core/ripemd"
)

//go:embed state.ipldsch
var stateSchema []byte

var (
	once sync.Once
	ts   *schema.TypeSystem
	err  error
)

func mustLoadSchema() *schema.TypeSystem {
	once.Do(func() {
		ts, err = ipld.LoadSchemaBytes(stateSchema)
	})
	if err != nil {
		panic(fmt.Errorf("failed to load IPLD schema: %s", err))
	}
	return ts
}

func Type() schema.Type {
	return mustLoadSchema().TypeByName("State")
}

// StateModel is the IPLD data model of a hasher state. Length holds the
// two's complement of the unsigned byte count.
type StateModel struct {
	Chain   []int64
	Pending []byte
	Length  int64
}

// Encode returns the binary form of s.
func Encode(s ripemd.State) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	model := StateModel{
		Chain:   make([]int64, len(s.Chain)),
		Pending: s.Pending,
		Length:  int64(s.Length),
	}
	for i, w := range s.Chain {
		model.Chain[i] = int64(w)
	}
	if model.Pending == nil {
		model.Pending = []byte{}
	}

	body, err := ipld.Marshal(dagcbor.Encode, &model, Type())
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return multiformat.TagWith(mhripemd.CodeOf(s.Variant), body), nil
}

// Decode parses the binary form produced by [Encode]. The returned state has
// been validated.
func Decode(b []byte) (ripemd.State, error) {
	code, body, err := multiformat.Untag(b)
	if err != nil {
		return ripemd.State{}, err
	}
	v, err := mhripemd.VariantOf(code)
	if err != nil {
		return ripemd.State{}, ripemd.NewInvalidStateSnapshotError("%s", err)
	}

	if err := checkShape(body); err != nil {
		return ripemd.State{}, err
	}
	model, err := unmarshal(body)
	if err != nil {
		return ripemd.State{}, fmt.Errorf("decoding state: %w", err)
	}

	s := ripemd.State{
		Variant: v,
		Chain:   make([]uint32, len(model.Chain)),
		Pending: model.Pending,
		Length:  uint64(model.Length),
	}
	for i, w := range model.Chain {
		if w < 0 || w > math.MaxUint32 {
			return ripemd.State{}, ripemd.NewInvalidStateSnapshotError("chain word %d out of range: %d", i, w)
		}
		s.Chain[i] = uint32(w)
	}
	if err := s.Validate(); err != nil {
		return ripemd.State{}, err
	}
	return s, nil
}

// Format encodes s as a base64url multibase string.
func Format(s ripemd.State) (string, error) {
	b, err := Encode(s)
	if err != nil {
		return "", err
	}
	str, err := multibase.Encode(multibase.Base64url, b)
	if err != nil {
		return "", fmt.Errorf("multibase encoding: %w", err)
	}
	return str, nil
}

// Parse decodes a multibase string produced by [Format].
func Parse(str string) (ripemd.State, error) {
	_, b, err := multibase.Decode(str)
	if err != nil {
		return ripemd.State{}, fmt.Errorf("decoding multibase string: %w", err)
	}
	return Decode(b)
}

// checkShape reports bodies that are not a three element list as invalid
// snapshots before they reach the schema.
func checkShape(body []byte) error {
	n, err := cbor.Decode(body)
	if err != nil {
		return ripemd.NewInvalidStateSnapshotError("body is not dag-cbor: %s", err)
	}
	if n.Kind() != datamodel.Kind_List || n.Length() != 3 {
		return ripemd.NewInvalidStateSnapshotError("body must be a list of chain, pending and length")
	}
	return nil
}

// unmarshal binds body to a StateModel, turning bindnode panics into errors.
func unmarshal(body []byte) (model StateModel, err error) {
	defer func() {
		if r := recover(); r != nil {
			if asErr, ok := r.(error); ok {
				err = asErr
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	_, err = ipld.Unmarshal(body, dagcbor.Decode, &model, Type())
	return
}
