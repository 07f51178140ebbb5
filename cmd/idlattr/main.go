package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/dnswlt/idlattr/annotate"
	"github.com/dnswlt/idlattr/internal/gitclient"
	"github.com/dnswlt/idlattr/manifest"
	"github.com/peterbourgon/ff/v3"
)

var (
	// Version is the application version.
	// It is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
)

// Options contains program options that can be set via command-line flags or
// environment variables.
type Options struct {
	ManifestFile string
	GitURL       string
	GitRef       string
	GitPath      string
}

// gitEnv holds git credentials, which are only ever read from the
// environment (IDLATTR_GIT_USER, IDLATTR_GIT_PASSWORD), never from flags.
type gitEnv struct {
	User     string `env:"GIT_USER"`
	Password string `env:"GIT_PASSWORD"`
}

func gitAuthFromEnv() *gitclient.Auth {
	var ge gitEnv
	if err := env.ParseWithOptions(&ge, env.Options{Prefix: "IDLATTR_"}); err != nil {
		log.Fatalf("Could not read git credentials from environment: %v", err)
	}
	if ge.User == "" {
		return nil
	}
	return &gitclient.Auth{
		Username: ge.User,
		Password: ge.Password,
	}
}

func addSourceFlags(fs *flag.FlagSet, opts *Options) {
	fs.StringVar(&opts.ManifestFile, "manifest", "annotations.yaml", "Path to the annotation manifest YAML file")
	fs.StringVar(&opts.GitURL, "git-url", "", "URL of a git repository to load the manifest from instead of the local file system")
	fs.StringVar(&opts.GitRef, "git-ref", "", "Git ref (branch, tag or SHA) at which to read the manifest. If empty, the latest release tag is used.")
	fs.StringVar(&opts.GitPath, "git-path", "annotations.yaml", "Path of the manifest file inside the git repository")
}

func parseFlags(name string, args []string, opts *Options) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	addSourceFlags(fs, opts)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("IDLATTR")); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		os.Exit(1)
	}
}

func loadManifest(opts Options) (*manifest.Manifest, error) {
	if opts.GitURL != "" {
		client, err := gitclient.New(opts.GitURL, gitAuthFromEnv())
		if err != nil {
			return nil, err
		}
		if opts.GitRef == "" {
			ref, err := client.LatestReleaseTag()
			if err != nil {
				return nil, fmt.Errorf("no -git-ref given and no release tag found: %w", err)
			}
			log.Printf("Using latest release tag %s", ref)
			opts.GitRef = ref
		}
		bs, err := client.ReadFile(opts.GitRef, opts.GitPath)
		if err != nil {
			return nil, fmt.Errorf("could not read %q at %q: %w", opts.GitPath, opts.GitRef, err)
		}
		m, err := manifest.Load(bytes.NewReader(bs))
		if err != nil {
			return nil, fmt.Errorf("manifest %q at %q: %w", opts.GitPath, opts.GitRef, err)
		}
		return m, nil
	}
	return manifest.LoadFile(opts.ManifestFile)
}

func runValidate(args []string) {
	var opts Options
	parseFlags("idlattr validate", args, &opts)

	m, err := loadManifest(opts)
	if err != nil {
		log.Fatalf("Invalid manifest: %v", err)
	}
	log.Printf("Manifest OK: %d type entries, %d field entries", len(m.Types), len(m.Fields))
}

func runPreview(args []string) {
	var opts Options
	parseFlags("idlattr preview", args, &opts)

	m, err := loadManifest(opts)
	if err != nil {
		log.Fatalf("Invalid manifest: %v", err)
	}

	rec := &annotate.Recorder{}
	m.Apply(rec)

	// One block per attachment, in the order the generator would receive
	// them. Multi-line annotations are printed as continuation lines.
	for _, at := range rec.Attachments() {
		lines := strings.Split(at.Attr, "\n")
		first := lines[0]
		if at.Attr == "" {
			first = "(empty)"
		}
		fmt.Printf("%-5s  %-40s  %s\n", at.Level, at.Path, first)
		for _, line := range lines[1:] {
			fmt.Printf("%-5s  %-40s  %s\n", "", "", line)
		}
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: idlattr <validate|preview> [flags]\n")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		runValidate(os.Args[2:])
	case "preview":
		runPreview(os.Args[2:])
	case "version":
		fmt.Println(Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q. Available commands: validate, preview, version\n", os.Args[1])
		os.Exit(1)
	}
}
