package config

/*
kit.go contains the Kit type, which binds the enabled capabilities.
*/

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/JesseCoretta/go-chronos"
	"github.com/JesseCoretta/go-chronos/fake"
	"github.com/JesseCoretta/go-chronos/localoffset"
	"github.com/JesseCoretta/go-chronos/wellknown"
)

/*
Kit holds the capabilities enabled by a [Config]. Accessors of disabled
capabilities return [ErrCapabilityDisabled].

A Kit is not safe for concurrent use, as its random generator is not.
*/
type Kit struct {
	cfg     Config
	format  wellknown.WellKnown
	offset  chronos.UtcOffset
	offsets localoffset.Source
	rand    *fake.Generator
}

/*
NewKit validates cfg and returns a [Kit] bearing the capabilities it
enables. A Sound local offset source reads the host's zone here.
*/
func NewKit(cfg Config) (*Kit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kit := &Kit{cfg: cfg}
	kit.format, _ = wellknown.Lookup(cfg.Format)
	kit.offset, _ = chronos.NewUtcOffset(cfg.DefaultOffset)
	kit.offsets = localoffset.NewSource(cfg.Features.LocalOffset)
	if cfg.Features.Rand {
		kit.rand = fake.New(cfg.Seed)
	}
	return kit, nil
}

// Config returns the configuration the receiver was built from.
func (r *Kit) Config() Config { return r.cfg }

// DefaultOffset returns the offset assumed for input lacking one.
func (r *Kit) DefaultOffset() chronos.UtcOffset { return r.offset }

// Formatter returns the configured well-known format for output.
func (r *Kit) Formatter() (wellknown.Formattable, error) {
	if !r.cfg.Features.Formatting {
		return nil, disabled("formatting")
	}
	return r.format, nil
}

// Parser returns the configured well-known format for input.
func (r *Kit) Parser() (wellknown.Parsable, error) {
	if !r.cfg.Features.Parsing {
		return nil, disabled("parsing")
	}
	return r.format, nil
}

// Offsets returns the source of the host's local offset.
func (r *Kit) Offsets() (localoffset.Source, error) {
	if r.offsets.Soundness() == localoffset.Disabled {
		return r.offsets, disabled("local offset")
	}
	return r.offsets, nil
}

// Rand returns the generator of random values.
func (r *Kit) Rand() (*fake.Generator, error) {
	if r.rand == nil {
		return nil, disabled("rand")
	}
	return r.rand, nil
}

/*
ParseInstant reads an [chronos.OffsetDateTime] from s using the
configured format. Input bearing a date and time but no offset is
taken to be in the default offset.
*/
func (r *Kit) ParseInstant(s string) (chronos.OffsetDateTime, error) {
	p, err := r.Parser()
	if err != nil {
		return chronos.UnixEpoch, err
	}
	odt, err := wellknown.ParseOffsetDateTime(p, s)
	if errors.Is(err, wellknown.ErrInsufficientInformation) {
		pdt, perr := wellknown.ParsePrimitiveDateTime(p, s)
		if perr == nil {
			return pdt.AssumeOffset(r.offset), nil
		}
	}
	return odt, err
}

/*
Render returns v in the configured output form. Text output is
produced by the configured format when v is an OffsetDateTime and
formatting is enabled, and by fmt otherwise. YAML and JSON output
require the Serde feature.
*/
func (r *Kit) Render(v any) ([]byte, error) {
	switch lc(r.cfg.Output) {
	case "yaml":
		if !r.cfg.Features.Serde {
			return nil, disabled("serde")
		}
		return yaml.Marshal(v)
	case "json":
		if !r.cfg.Features.Serde {
			return nil, disabled("serde")
		}
		return json.MarshalIndent(v, "", "  ")
	}

	if odt, ok := v.(chronos.OffsetDateTime); ok {
		if f, err := r.Formatter(); err == nil {
			s, err := wellknown.Format(f, odt)
			return []byte(s + "\n"), err
		}
	}
	return []byte(fmt.Sprintln(v)), nil
}

func disabled(capability string) error {
	return fmt.Errorf("%w: %s", ErrCapabilityDisabled, capability)
}
