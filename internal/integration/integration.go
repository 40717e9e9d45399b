package integration

import "switchcraft/internal/shell"

// Key identifies an integration in the registry, config icons and table rows.
type Key string

const (
	Kubernetes Key = "k8s"
	GCloud     Key = "gcp"
	AWS        Key = "aws"
	Azure      Key = "azure"
	Venv       Key = "venv"
	Path       Key = "path"
)

// FallbackColor is used for rows with no registered integration, such as custom env vars.
const FallbackColor = "#AAAAAA"

// Integration toggles the session state of one external tool.
type Integration interface {
	Key() Key
	Label() string
	Color() string
	Activate(d shell.Dialect, value string) []string
	Deactivate(d shell.Dialect) []string
	// Describe is a human-readable form of what Activate does, for previews.
	Describe(d shell.Dialect, value string) string
}

type kubernetes struct{}

func (kubernetes) Key() Key { return Kubernetes }
func (kubernetes) Label() string { return "k8s" }
func (kubernetes) Color() string { return "#326CE5" }

func (kubernetes) Activate(d shell.Dialect, context string) []string {
	return []string{d.IfCommandExists("kubectx", d.Silence("kubectx "+d.Escape(context), shell.Stdout))}
}

func (kubernetes) Deactivate(d shell.Dialect) []string {
	return []string{d.IfCommandExists("kubectx", d.Silence("kubectx -u", shell.Stdout|shell.Stderr))}
}

func (kubernetes) Describe(_ shell.Dialect, context string) string {
	return "kubectx " + context
}

type gcloud struct{}

func (gcloud) Key() Key { return GCloud }
func (gcloud) Label() string { return "gcp" }
func (gcloud) Color() string { return "#4285F4" }

func (gcloud) Activate(d shell.Dialect, config string) []string {
	return []string{d.IfCommandExists("gcloud",
		d.Silence("gcloud config configurations activate "+d.Escape(config), shell.Stdout|shell.Stderr))}
}

func (gcloud) Deactivate(d shell.Dialect) []string {
	return []string{d.IfCommandExists("gcloud",
		d.Silence("gcloud config configurations activate default", shell.Stdout|shell.Stderr))}
}

func (gcloud) Describe(_ shell.Dialect, config string) string {
	return "gcloud config configurations activate " + config
}

type aws struct{}

const awsProfileVar = "AWS_PROFILE"

func (aws) Key() Key { return AWS }
func (aws) Label() string { return "aws" }
func (aws) Color() string { return "#FF9900" }

func (aws) Activate(d shell.Dialect, profile string) []string {
	return []string{d.SetEnv(awsProfileVar, profile)}
}

func (aws) Deactivate(d shell.Dialect) []string {
	return []string{d.UnsetEnv(awsProfileVar)}
}

func (aws) Describe(_ shell.Dialect, profile string) string {
	return "export " + awsProfileVar + "=" + profile
}

// azure has no switch primitive in the az CLI, so activation only clears the account.
type azure struct{}

func (azure) Key() Key { return Azure }
func (azure) Label() string { return "azure" }
func (azure) Color() string { return "#0078D4" }

func (z azure) Activate(d shell.Dialect, _ string) []string {
	return z.Deactivate(d)
}

func (azure) Deactivate(d shell.Dialect) []string {
	return []string{d.IfCommandExists("az", d.Silence("az account clear", shell.Stdout|shell.Stderr))}
}

func (azure) Describe(_ shell.Dialect, account string) string {
	return "# Azure account: " + account
}

type venv struct{}

func (venv) Key() Key { return Venv }
func (venv) Label() string { return "venv" }
func (venv) Color() string { return "#3776AB" }

func (venv) Activate(d shell.Dialect, dir string) []string {
	script := d.VenvScript(dir)
	return []string{d.FileExists(script, d.SourceFile(script))}
}

func (venv) Deactivate(d shell.Dialect) []string {
	return []string{d.IfCommandExists("deactivate", d.Silence("deactivate", shell.Stderr))}
}

func (venv) Describe(d shell.Dialect, dir string) string {
	return "source " + d.VenvScript(dir)
}

type path struct{}

func (path) Key() Key { return Path }
func (path) Label() string { return "path" }
func (path) Color() string { return FallbackColor }

func (path) Activate(d shell.Dialect, dir string) []string {
	return []string{d.Cd(dir)}
}

func (path) Deactivate(shell.Dialect) []string { return nil }

func (path) Describe(_ shell.Dialect, dir string) string {
	return "cd " + dir
}
