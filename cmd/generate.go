package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/readmegen/internal/form"
	"github.com/grovetools/readmegen/pkg/config"
	"github.com/grovetools/readmegen/pkg/generator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const previewLength = 500

type generateOptions struct {
	interactive bool
	name        string
	description string
	language    string
	license     string
	noScan      bool
	provider    string
	model       string
	dir         string
	output      string
	stdout      bool
}

// runSettings is the merged view of flags, readmegen.yml and defaults for one run.
type runSettings struct {
	request  generator.Request
	provider config.Provider
	output   string
}

func (o *generateOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.name, "name", "n", "", "Project name")
	cmd.Flags().StringVarP(&o.description, "description", "d", "", "Project description")
	cmd.Flags().StringVarP(&o.language, "language", "l", "", "Primary programming language")
	cmd.Flags().StringVar(&o.license, "license", config.DefaultLicense, "License type")
	cmd.Flags().BoolVar(&o.noScan, "no-scan", false, "Don't scan project files")
	cmd.Flags().StringVar(&o.provider, "provider", "", "AI provider: ollama (local) or openai (hosted); defaults to $AI_PROVIDER or ollama")
	cmd.Flags().StringVar(&o.model, "model", "", "Model name; defaults to $MODEL_NAME or the provider's default")
	cmd.Flags().StringVar(&o.dir, "dir", ".", "Project directory to scan and write into")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file name (default README.md)")
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := cli.NewStandardCommand("readmegen", "Generate a README.md from a short project description using an LLM")
	cmd.Long = `Builds a prompt from a project name, description and an optional scan of the project directory,
sends it to a local Ollama daemon or the OpenAI API, and writes the response to README.md.

Settings are taken from flags, then from readmegen.yml in the project directory (or --config), then from the
environment (AI_PROVIDER, MODEL_NAME, OPENAI_API_KEY, OLLAMA_HOST; a .env file is loaded if present).

Examples:
  readmegen                                         # Interactive mode
  readmegen -n PriceScraper -d "Scrapes prices to CSV"
  readmegen -n api -d "REST API for orders" -l Go --license Apache-2.0 --no-scan
  readmegen --provider openai --model gpt-4o-mini -n demo -d "A demo project"`
	cmd.SilenceUsage = true
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, opts)
	}
	if f := cmd.PersistentFlags().Lookup("config"); f != nil {
		f.Usage = "Path to readmegen.yml (default: <dir>/readmegen.yml)"
	}

	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Run in interactive mode (default when no name or description is given)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the README instead of writing it")
	opts.bindFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := getLogger(cmd)
	out := cmd.OutOrStdout()

	if err := config.LoadEnv(); err != nil {
		logger.WithError(err).Warn("Ignoring .env file")
	}

	project, err := loadProject(opts.dir, cli.GetOptions(cmd).ConfigFile, logger)
	if err != nil {
		return err
	}
	settings := mergeSettings(opts, project, cmd.Flags().Changed("license"), cmd.Flags().Changed("no-scan"))

	req := settings.request
	interactive := opts.interactive || (req.ProjectName == "" && req.Description == "")
	if interactive {
		answers, err := form.Run(cmd.InOrStdin(), out, form.Answers{
			Provider:    defaultProviderChoice(settings.provider.Name),
			ProjectName: req.ProjectName,
			Description: req.Description,
			Language:    req.Language,
			License:     req.License,
			Scan:        req.Scan,
		})
		if errors.Is(err, form.ErrCancelled) {
			fmt.Fprintln(out, "❌ Operation cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		settings.applyAnswers(answers)
	} else if req.ProjectName == "" || req.Description == "" {
		return fmt.Errorf("--name and --description are required in non-interactive mode")
	}

	gen, err := newGenerator(ctx, settings.provider, logger)
	if err != nil {
		return err
	}

	content, err := gen.Generate(ctx, settings.request)
	if err != nil {
		return err
	}

	if opts.stdout {
		fmt.Fprintln(out, content)
		return nil
	}

	path, err := gen.Save(content, settings.request.Directory, settings.output)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "✅ README generated successfully!")
	fmt.Fprintf(out, "📄 Saved to: %s\n", path)
	if interactive {
		printPreview(out, content)
	}
	return nil
}

// newGenerator resolves the provider configuration against the environment and builds a Generator.
func newGenerator(ctx context.Context, explicit config.Provider, logger *logrus.Logger) (*generator.Generator, error) {
	resolved, err := config.ResolveProvider(explicit, nil)
	if err != nil {
		return nil, err
	}
	gen, err := generator.New(ctx, resolved, logger)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Using provider %s", gen.Provider())
	return gen, nil
}

// loadProject reads readmegen.yml from dir, falling back to defaults when it is absent.
// An explicit configFile must exist.
func loadProject(dir, configFile string, logger *logrus.Logger) (*config.ProjectConfig, error) {
	if configFile != "" {
		project, err := config.LoadProjectFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", configFile, err)
		}
		return project, nil
	}

	project, err := config.LoadProject(dir)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("No %s found in %s, using defaults", config.ConfigFileName, dir)
		return config.DefaultProject(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return project, nil
}

// mergeSettings layers flags over readmegen.yml. Flags with defaults (license, no-scan) only
// win when set explicitly.
func mergeSettings(opts generateOptions, project *config.ProjectConfig, licenseSet, scanSet bool) runSettings {
	s := runSettings{
		request: generator.Request{
			ProjectName: firstNonEmpty(opts.name, project.Name),
			Description: firstNonEmpty(opts.description, project.Description),
			Language:    firstNonEmpty(opts.language, project.Language),
			License:     firstNonEmpty(project.License, config.DefaultLicense),
			Scan:        project.ScanEnabled(),
			Directory:   firstNonEmpty(opts.dir, "."),
		},
		provider: config.Provider{
			Name:    config.ProviderName(firstNonEmpty(opts.provider, project.Provider.Name)),
			Model:   firstNonEmpty(opts.model, project.Provider.Model),
			BaseURL: project.Provider.BaseURL,
		},
		output: firstNonEmpty(opts.output, project.Output, config.DefaultOutputFile),
	}
	if licenseSet {
		s.request.License = opts.license
	}
	if scanSet {
		s.request.Scan = !opts.noScan
	}
	return s
}

func (s *runSettings) applyAnswers(a form.Answers) {
	if a.Provider != "" {
		prev, _ := config.ParseProviderName(string(s.provider.Name))
		next, _ := config.ParseProviderName(a.Provider)
		if s.provider.Name != "" && prev != next {
			// A model or endpoint configured for the other backend no longer applies.
			s.provider.Model = ""
			s.provider.BaseURL = ""
		}
		s.provider.Name = config.ProviderName(a.Provider)
	}
	s.request.ProjectName = a.ProjectName
	s.request.Description = a.Description
	s.request.Language = a.Language
	s.request.License = a.License
	s.request.Scan = a.Scan
}

// defaultProviderChoice maps the configured or environment provider onto a form choice.
func defaultProviderChoice(name config.ProviderName) string {
	raw := string(name)
	if raw == "" {
		raw = os.Getenv(config.EnvProvider)
	}
	parsed, err := config.ParseProviderName(raw)
	if err != nil {
		return ""
	}
	return string(parsed)
}

func printPreview(out io.Writer, content string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, form.DefaultStyles().RenderPreview("📊 Preview:", generator.Preview(content, previewLength)))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
