package main

import (
	"github.com/at-ishikawa/lingoflow/internal/generation"
	"github.com/spf13/pflag"
)

// levelFlag makes generation.Level usable as a cobra enum flag.
type levelFlag generation.Level

var _ pflag.Value = (*levelFlag)(nil)

func (f *levelFlag) Set(val string) error {
	level, err := generation.ParseLevel(val)
	if err != nil {
		return err
	}
	*f = levelFlag(level)
	return nil
}

func (f levelFlag) String() string {
	return string(f)
}

func (f *levelFlag) Type() string {
	return "level"
}

type imageSizeFlag generation.ImageSize

var _ pflag.Value = (*imageSizeFlag)(nil)

func (f *imageSizeFlag) Set(val string) error {
	size, err := generation.ParseImageSize(val)
	if err != nil {
		return err
	}
	*f = imageSizeFlag(size)
	return nil
}

func (f imageSizeFlag) String() string {
	return string(f)
}

func (f *imageSizeFlag) Type() string {
	return "size"
}

type aspectRatioFlag generation.AspectRatio

var _ pflag.Value = (*aspectRatioFlag)(nil)

func (f *aspectRatioFlag) Set(val string) error {
	aspect, err := generation.ParseAspectRatio(val)
	if err != nil {
		return err
	}
	*f = aspectRatioFlag(aspect)
	return nil
}

func (f aspectRatioFlag) String() string {
	return string(f)
}

func (f *aspectRatioFlag) Type() string {
	return "aspect"
}
