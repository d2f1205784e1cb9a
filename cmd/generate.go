package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/urnpubid/format"
	"github.com/lehigh-university-libraries/urnpubid/publication"
	"github.com/lehigh-university-libraries/urnpubid/urn"

	// Register output formats
	_ "github.com/lehigh-university-libraries/urnpubid/format/csv"
	_ "github.com/lehigh-university-libraries/urnpubid/format/json"
	_ "github.com/lehigh-university-libraries/urnpubid/format/text"
	_ "github.com/lehigh-university-libraries/urnpubid/format/yaml"
)

var (
	genPressID     int64
	genObjectID    int64
	genMonographID int64
	genPreview     bool
	genOutputFile  string
	genFormat      string
	genPretty      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <monograph|format>",
	Short: "Get or assign the URN of a monograph or publication format",
	Long: `Return the URN of an object, generating and storing it if none is
stored yet.

With --preview the URN is computed but not stored. A stored URN is always
returned unchanged, even if the press settings have changed since.

Examples:
  urnpubid generate monograph --press 1 --id 42
  urnpubid generate format --press 1 --id 7 --monograph 42
  urnpubid generate monograph --press 1 --id 42 --preview --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&genPressID, "press", 0, "Press id")
	generateCmd.Flags().Int64Var(&genObjectID, "id", 0, "Monograph or publication format id")
	generateCmd.Flags().Int64Var(&genMonographID, "monograph", 0, "Parent monograph id (publication formats only)")
	generateCmd.Flags().BoolVar(&genPreview, "preview", false, "Compute the URN without storing it")
	generateCmd.Flags().StringVarP(&genOutputFile, "output-file", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().StringVar(&genFormat, "output", "", "Output format (text, json, yaml, csv)")
	generateCmd.Flags().BoolVar(&genPretty, "pretty", false, "Pretty-print JSON output")
	_ = generateCmd.MarkFlagRequired("press")
	_ = generateCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(generateCmd)
}

func buildObject(kind string, pressID, id, monographID int64) (publication.Object, error) {
	typ, err := publication.ParseObjectType(kind)
	if err != nil {
		return nil, err
	}
	switch typ {
	case publication.ObjectTypeMonograph:
		return &publication.Monograph{ID: id, PressID: pressID}, nil
	default:
		if monographID <= 0 {
			return nil, fmt.Errorf("--monograph is required for publication formats")
		}
		return &publication.PublicationFormat{ID: id, MonographID: monographID, PressID: pressID}, nil
	}
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	obj, err := buildObject(args[0], genPressID, genObjectID, genMonographID)
	if err != nil {
		return err
	}

	repo := repository()
	ps, err := repo.Load(genPressID)
	if err != nil {
		return err
	}
	if !ps.Enabled {
		return fmt.Errorf("URN plugin is disabled for press %d (enable it with: urnpubid enable --press %d)", genPressID, genPressID)
	}

	objects, err := objectStore()
	if err != nil {
		return err
	}

	presses := &urn.ContextResolver{Current: &ps.Press, Fallback: repo}
	gen := urn.NewGenerator(presses, repo, objects)

	id, ok := gen.GetPubID(obj, genPreview)
	if !ok {
		return fmt.Errorf("no URN available for %s %d: check the press prefix and suffix settings", publication.TypeOf(obj), obj.ObjectID())
	}

	record := &format.Record{
		PressID:      ps.Press.ID,
		PressPath:    ps.Press.Path,
		ObjectType:   publication.TypeOf(obj).String(),
		ObjectID:     obj.ObjectID(),
		MonographID:  monographOf(obj),
		URN:          id,
		ResolvingURL: urn.ResolvingURL(id),
		Valid:        urn.Validate(id),
		Preview:      genPreview,
	}

	var output io.Writer
	if genOutputFile != "" {
		f, createErr := os.Create(genOutputFile)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = cmd.OutOrStdout()
	}

	serializer, err := pickSerializer(genFormat, genOutputFile)
	if err != nil {
		return err
	}

	opts := format.NewSerializeOptions()
	opts.Pretty = genPretty
	if err := serializer.Serialize(output, []*format.Record{record}, opts); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}

	return nil
}

func pickSerializer(name, outputFile string) (format.Serializer, error) {
	if name == "" && outputFile != "" {
		if f, err := format.DetectFormat(outputFile); err == nil {
			name = f.Name()
		}
	}
	if name == "" {
		name = appConfig.Output
	}
	serializer, err := format.GetSerializer(name)
	if err != nil {
		return nil, fmt.Errorf("unknown output format %q: %w", name, err)
	}
	return serializer, nil
}

func monographOf(obj publication.Object) int64 {
	switch o := obj.(type) {
	case *publication.PublicationFormat:
		return o.MonographID
	case *publication.Monograph:
		return o.ID
	}
	return 0
}
