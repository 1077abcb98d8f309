// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chinese

import (
	"fmt"

	"github.com/liuzl/gocc"

	"github.com/zjgcainiao/HanwenPDF/pkg/types"
)

// OpenCC converts text using the gocc port of the OpenCC dictionaries.
type OpenCC struct {
	mode string
	cc   *gocc.OpenCC
}

// NewOpenCC builds a converter for the given profile. An unknown profile or
// missing dictionary data maps to types.ErrConversion; both are fatal for
// the run.
func NewOpenCC(mode string) (*OpenCC, error) {
	if !ValidMode(mode) {
		return nil, fmt.Errorf("%w: unknown mode %q (see 'hanwenpdf modes')", types.ErrConversion, mode)
	}
	cc, err := gocc.New(mode)
	if err != nil {
		return nil, fmt.Errorf("%w: initializing %s: %v", types.ErrConversion, mode, err)
	}
	return &OpenCC{mode: mode, cc: cc}, nil
}

// Mode returns the conversion profile this converter was built with.
func (o *OpenCC) Mode() string { return o.mode }

// Convert returns line converted under the configured profile.
func (o *OpenCC) Convert(line string) (string, error) {
	if line == "" {
		return "", nil
	}
	out, err := o.cc.Convert(line)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrConversion, err)
	}
	return out, nil
}
