// Package profile reads target platform profiles. A profile names the
// platform a package is built for and may override recipe options:
//
//	os: baremetal
//	compiler: gcc
//	compiler_version: "12.2"
//	arch: cortex-m4
//	build_type: MinSizeRel
//	options:
//	  libhal-armcortex:
//	    use_picolibc: false
package profile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/halpkg/halpkg/pkgs/target"
	"github.com/halpkg/halpkg/recipe"
)

// Profile is a parsed profile file.
type Profile struct {
	OS              string                    `yaml:"os"`
	Compiler        string                    `yaml:"compiler"`
	CompilerVersion string                    `yaml:"compiler_version"`
	Arch            string                    `yaml:"arch"`
	BuildType       string                    `yaml:"build_type"`
	Options         map[string]recipe.Options `yaml:"options"`
}

// Parse reads and parses a profile from either provided data or a file
// path. If data is non-nil, it is used directly and the file parameter is
// ignored. Otherwise the file is read from the provided path.
func Parse(file string, data []byte) (*Profile, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewBuffer(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		reader = f
	}

	var p Profile

	if err := yaml.NewDecoder(reader).Decode(&p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) validate() error {
	switch {
	case p.OS == "":
		return fmt.Errorf("profile: missing os")
	case p.Compiler == "":
		return fmt.Errorf("profile: missing compiler")
	case p.Arch == "":
		return fmt.Errorf("profile: missing arch")
	}
	return nil
}

// Platform returns the platform descriptor the profile describes.
func (p *Profile) Platform() target.Platform {
	return target.Platform{
		OS:              p.OS,
		Compiler:        p.Compiler,
		CompilerVersion: p.CompilerVersion,
		Arch:            p.Arch,
		BuildType:       p.BuildType,
	}
}

// OptionsFor returns the option overrides the profile declares for a
// recipe. The result may be empty but is never nil.
func (p *Profile) OptionsFor(recipeName string) recipe.Options {
	if opts, ok := p.Options[recipeName]; ok {
		return opts.Clone()
	}
	return recipe.Options{}
}
