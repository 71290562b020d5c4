package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"cictt/internal/core/engine"
	"cictt/internal/core/hazard"
	perr "cictt/internal/platform/errors"
	str "cictt/internal/platform/strings"

	"github.com/spf13/cobra"
)

// maxInput caps what analyze reads from a file or stdin
const maxInput = 1 << 20

type analyzeFlags struct {
	asJSON  bool
	out     string
	disable []string
	weights []string
	add     []string
}

func newAnalyzeCmd() *cobra.Command {
	var f analyzeFlags
	c := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Score a report and print the hazard breakdown",
		Long: "Reads the report from a file, or stdin when the argument is - or absent. " +
			"Edits run in order: --add, --disable, --weight.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, f)
		},
	}
	c.Flags().BoolVar(&f.asJSON, "json", false, "print the report as JSON")
	c.Flags().StringVarP(&f.out, "out", "o", "", "also write the JSON report to this path")
	c.Flags().StringArrayVar(&f.disable, "disable", nil, "disable a category (repeatable)")
	c.Flags().StringArrayVar(&f.weights, "weight", nil, "set a user weight CODE=W, clamped to 0.5..2 (repeatable)")
	c.Flags().StringArrayVar(&f.add, "add", nil, "add a category manually (repeatable)")
	return c
}

func runAnalyze(cmd *cobra.Command, args []string, f analyzeFlags) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	eng := engine.New(nil)
	an, _ := analyzerFor(eng)
	res, err := an.Analyze(cmd.Context(), text)
	if err != nil {
		return err
	}
	if res, err = applyEdits(eng, res, f); err != nil {
		return err
	}

	if f.out != "" {
		if err := writeReport(f.out, res); err != nil {
			return err
		}
	}
	if f.asJSON {
		return encodeJSON(cmd.OutOrStdout(), res)
	}
	printResult(cmd.OutOrStdout(), res)
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		fh, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer fh.Close()
		r = fh
	}
	b, err := io.ReadAll(io.LimitReader(r, maxInput+1))
	if err != nil {
		return "", err
	}
	if len(b) > maxInput {
		return "", perr.TooLargef("report exceeds %d bytes", maxInput)
	}
	return string(b), nil
}

func applyEdits(eng *engine.Engine, res hazard.AnalysisResult, f analyzeFlags) (hazard.AnalysisResult, error) {
	var ok bool
	for _, raw := range f.add {
		code := str.Code(raw)
		if !eng.IsValidCode(code) {
			return res, perr.NotFoundf("unknown category code %s", code)
		}
		if res, ok = eng.AddManual(res, code); !ok {
			return res, perr.Conflictf("category %s is already in the result", code)
		}
	}
	for _, raw := range f.disable {
		code := str.Code(raw)
		if res, ok = eng.Enable(res, code, false); !ok {
			return res, perr.NotFoundf("category %s is not in the result", code)
		}
	}
	for _, raw := range f.weights {
		k, v, found := str.Pair(raw)
		if !found {
			return res, perr.InvalidArgf("weight %q: want CODE=W", raw)
		}
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return res, perr.InvalidArgf("weight %q: %v", raw, err)
		}
		code := str.Code(k)
		if res, ok = eng.Weight(res, code, hazard.ClampWeight(w)); !ok {
			return res, perr.NotFoundf("category %s is not in the result", code)
		}
	}
	return res, nil
}

// writeReport writes the indented export other tools read
func writeReport(path string, res hazard.AnalysisResult) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
