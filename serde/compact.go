package serde

/*
compact.go contains the numeric encodings of durations and offsets.
*/

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/JesseCoretta/go-chronos"
)

/*
CompactDuration wraps [chronos.Duration], written as the two-element
array [seconds, nanoseconds]. Both elements bear the sign of the
duration.
*/
type CompactDuration struct{ chronos.Duration }

func (r CompactDuration) parts() [2]int64 {
	return [2]int64{r.WholeSeconds(), int64(r.SubsecNanoseconds())}
}

func (r *CompactDuration) setParts(p [2]int64) error {
	secs, nanos := p[0], p[1]
	switch {
	case nanos <= -1_000_000_000 || nanos >= 1_000_000_000:
		return fmt.Errorf("serde: nanoseconds %d out of range", nanos)
	case (secs > 0 && nanos < 0) || (secs < 0 && nanos > 0):
		return fmt.Errorf("serde: sign of seconds %d and nanoseconds %d disagree", secs, nanos)
	}
	r.Duration = chronos.DurationFromParts(secs, int32(nanos))
	return nil
}

func (r CompactDuration) MarshalJSON() ([]byte, error) { return json.Marshal(r.parts()) }

func (r *CompactDuration) UnmarshalJSON(b []byte) error {
	var p [2]int64
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("serde: %w", err)
	}
	return r.setParts(p)
}

func (r CompactDuration) MarshalYAML() (any, error) {
	p := r.parts()
	return flowSeq(p[:]...), nil
}

func (r *CompactDuration) UnmarshalYAML(n *yaml.Node) error {
	var p []int64
	if err := n.Decode(&p); err != nil {
		return fmt.Errorf("serde: %w", err)
	} else if len(p) != 2 {
		return fmt.Errorf("serde: line %d: expected [seconds, nanoseconds]", n.Line)
	}
	return r.setParts([2]int64{p[0], p[1]})
}

/*
CompactOffset wraps [chronos.UtcOffset], written as the three-element
array [hours, minutes, seconds]. Each element bears the sign of the
offset.
*/
type CompactOffset struct{ chronos.UtcOffset }

func (r CompactOffset) parts() [3]int8 {
	h, m, s := r.AsHMS()
	return [3]int8{h, m, s}
}

func (r *CompactOffset) setParts(p [3]int8) (err error) {
	var o chronos.UtcOffset
	if o, err = chronos.UtcOffsetFromHMS(p[0], p[1], p[2]); err == nil {
		r.UtcOffset = o
	}
	return
}

func (r CompactOffset) MarshalJSON() ([]byte, error) { return json.Marshal(r.parts()) }

func (r *CompactOffset) UnmarshalJSON(b []byte) error {
	var p [3]int8
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("serde: %w", err)
	}
	return r.setParts(p)
}

func (r CompactOffset) MarshalYAML() (any, error) {
	p := r.parts()
	return flowSeq(int64(p[0]), int64(p[1]), int64(p[2])), nil
}

func (r *CompactOffset) UnmarshalYAML(n *yaml.Node) error {
	var p []int8
	if err := n.Decode(&p); err != nil {
		return fmt.Errorf("serde: %w", err)
	} else if len(p) != 3 {
		return fmt.Errorf("serde: line %d: expected [hours, minutes, seconds]", n.Line)
	}
	return r.setParts([3]int8{p[0], p[1], p[2]})
}

// flowSeq returns a single-line sequence node of integers.
func flowSeq(v ...int64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Tag: "!!seq"}
	for _, x := range v {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprint(x),
		})
	}
	return n
}
