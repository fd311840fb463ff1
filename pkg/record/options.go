package record

import "flag"

// Options controls the record syntax. Comment is a set of bytes that start a
// comment; an empty Comment disables comments.
type Options struct {
	Separator string `yaml:"separator"`
	Comment   string `yaml:"comment"`
	MaxValue  int    `yaml:"max_value"`
	Strict    bool   `yaml:"strict"`
}

func DefaultOptions() Options {
	return Options{
		Separator: DefaultSeparator,
		Comment:   DefaultComment,
		MaxValue:  DefaultMaxValue,
	}
}

func (o *Options) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.StringVar(&o.Separator, prefix+"separator", DefaultSeparator, "Literal that separates a key from its value.")
	f.StringVar(&o.Comment, prefix+"comment", DefaultComment, "Bytes that start a comment. Empty disables comments.")
	f.IntVar(&o.MaxValue, prefix+"max-value", DefaultMaxValue, "Longest text value in bytes.")
	f.BoolVar(&o.Strict, prefix+"strict", false, "Stop at the first malformed line instead of skipping it.")
}
