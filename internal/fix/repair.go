package fix

import (
	"sqlex/internal/diag"
	"sqlex/internal/parser"
	"sqlex/internal/source"
)

// DefaultMaxRounds bounds Repair.
const DefaultMaxRounds = 16

// Repair re-parses src, applying the first suggested fix after each failure,
// until the expression parses or no fix is left. It returns the final text,
// the fixes applied in order and the last parse error, nil on success.
func Repair(src string, opts parser.Options, maxRounds int) (string, []AppliedFix, error) {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	var applied []AppliedFix
	for range maxRounds {
		fs := source.NewFileSet()
		id := fs.AddVirtual("<repair>", []byte(src))
		bag := diag.NewBag(8)
		popts := opts
		popts.Reporter = diag.BagReporter{Bag: bag}
		_, err := parser.New(fs.Get(id), popts).ParseTop()
		if err == nil {
			return src, applied, nil
		}
		res, ferr := Apply(fs, bag.Items(), ApplyModeOnce)
		if ferr != nil {
			return src, applied, err
		}
		applied = append(applied, res.Applied...)
		src = string(res.Content[id])
	}
	_, err := parser.ParseExpression(src, opts)
	return src, applied, err
}
