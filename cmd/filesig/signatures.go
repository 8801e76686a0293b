package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/grokify/filesig/pkg/filesig"
)

type signaturesOptions struct {
	ext      string
	offset   int
	disputed bool
	stats    bool
	json     bool
}

func newSignaturesCmd(g *globalOptions) *cobra.Command {
	opts := &signaturesOptions{}

	cmd := &cobra.Command{
		Use:   "signatures",
		Short: "List the built-in signatures",
		Long: `List the signatures in the built-in registry, in matching order.

Examples:
  # Every signature that can identify a PDF
  filesig signatures --ext pdf

  # Signatures checked beyond the first bytes
  filesig signatures --offset 512

  # Summary of the registry
  filesig signatures --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.offset = -1
			if cmd.Flags().Changed("offset") {
				opts.offset, _ = cmd.Flags().GetInt("offset")
			}
			return runSignatures(cmd.OutOrStdout(), filesig.Default(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ext, "ext", "", "Only signatures for this extension")
	cmd.Flags().Int("offset", 0, "Only signatures at this byte offset")
	cmd.Flags().BoolVar(&opts.disputed, "disputed", false, "Only signatures shared by several extensions")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print registry statistics instead of the list")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")

	return cmd
}

type signatureEntry struct {
	Pattern     string   `json:"pattern"`
	Offset      int      `json:"offset"`
	Description string   `json:"description"`
	Extensions  []string `json:"extensions"`
	Disputed    bool     `json:"disputed"`
}

type registryStats struct {
	Signatures     int            `json:"signatures"`
	Extensions     int            `json:"extensions"`
	Disputed       int            `json:"disputed"`
	Offsets        map[int]int    `json:"offsets"`
	MeanPatternLen float64        `json:"mean_pattern_bytes"`
	P50PatternLen  float64        `json:"p50_pattern_bytes"`
	P90PatternLen  float64        `json:"p90_pattern_bytes"`
	MaxPatternLen  float64        `json:"max_pattern_bytes"`
	TopExtensions  map[string]int `json:"top_extensions"`
}

// selectSignatures applies the listing filters. A negative offset means any.
func selectSignatures(reg *filesig.Registry, opts *signaturesOptions) []filesig.Signature {
	if opts.offset >= 0 {
		reg = reg.AtOffset(opts.offset)
	}
	sigs := reg.Signatures()
	if opts.ext != "" {
		sigs = reg.WithExtension(opts.ext)
	}
	if opts.disputed {
		kept := sigs[:0:0]
		for _, s := range sigs {
			if s.IsDisputed() {
				kept = append(kept, s)
			}
		}
		sigs = kept
	}
	return sigs
}

func runSignatures(out io.Writer, reg *filesig.Registry, opts *signaturesOptions) error {
	sigs := selectSignatures(reg, opts)

	if opts.stats {
		st, err := computeRegistryStats(sigs)
		if err != nil {
			return err
		}
		if opts.json {
			return writeJSON(out, st)
		}
		printRegistryStats(out, st)
		return nil
	}

	if opts.json {
		entries := make([]signatureEntry, 0, len(sigs))
		for _, s := range sigs {
			entries = append(entries, signatureEntry{
				Pattern:     s.Pattern(),
				Offset:      s.Offset(),
				Description: s.Description(),
				Extensions:  s.Extensions(),
				Disputed:    s.IsDisputed(),
			})
		}
		return writeJSON(out, entries)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tPATTERN\tEXTENSIONS\tDESCRIPTION")
	for _, s := range sigs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Offset(), s.Pattern(), strings.Join(s.Extensions(), ","), s.Description())
	}
	return tw.Flush()
}

func computeRegistryStats(sigs []filesig.Signature) (*registryStats, error) {
	st := &registryStats{
		Signatures:    len(sigs),
		Offsets:       map[int]int{},
		TopExtensions: map[string]int{},
	}
	if len(sigs) == 0 {
		return st, nil
	}

	exts := map[string]int{}
	lengths := make(stats.Float64Data, 0, len(sigs))
	for _, s := range sigs {
		st.Offsets[s.Offset()]++
		if s.IsDisputed() {
			st.Disputed++
		}
		for _, e := range s.Extensions() {
			exts[e]++
		}
		lengths = append(lengths, float64(len(s.Pattern())/2))
	}
	st.Extensions = len(exts)

	var err error
	if st.MeanPatternLen, err = lengths.Mean(); err != nil {
		return nil, err
	}
	if st.P50PatternLen, err = lengths.Median(); err != nil {
		return nil, err
	}
	if st.P90PatternLen, err = lengths.Percentile(90); err != nil {
		return nil, err
	}
	if st.MaxPatternLen, err = lengths.Max(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(exts))
	for e := range exts {
		names = append(names, e)
	}
	sort.Slice(names, func(i, j int) bool {
		if exts[names[i]] != exts[names[j]] {
			return exts[names[i]] > exts[names[j]]
		}
		return names[i] < names[j]
	})
	for _, e := range names[:min(10, len(names))] {
		st.TopExtensions[e] = exts[e]
	}
	return st, nil
}

func printRegistryStats(out io.Writer, st *registryStats) {
	fmt.Fprintf(out, "Signatures:          %d\n", st.Signatures)
	fmt.Fprintf(out, "Extensions:          %d\n", st.Extensions)
	fmt.Fprintf(out, "Disputed:            %d\n", st.Disputed)
	fmt.Fprintf(out, "Pattern bytes:       mean %.1f, p50 %.0f, p90 %.0f, max %.0f\n",
		st.MeanPatternLen, st.P50PatternLen, st.P90PatternLen, st.MaxPatternLen)

	offsets := make([]int, 0, len(st.Offsets))
	for o := range st.Offsets {
		offsets = append(offsets, o)
	}
	sort.Ints(offsets)
	fmt.Fprintln(out, "By offset:")
	for _, o := range offsets {
		fmt.Fprintf(out, "  %-6d %d\n", o, st.Offsets[o])
	}

	names := make([]string, 0, len(st.TopExtensions))
	for e := range st.TopExtensions {
		names = append(names, e)
	}
	sort.Slice(names, func(i, j int) bool {
		if st.TopExtensions[names[i]] != st.TopExtensions[names[j]] {
			return st.TopExtensions[names[i]] > st.TopExtensions[names[j]]
		}
		return names[i] < names[j]
	})
	fmt.Fprintln(out, "Most signatures:")
	for _, e := range names {
		fmt.Fprintf(out, "  %-6s %d\n", e, st.TopExtensions[e])
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
