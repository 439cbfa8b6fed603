package velero

// RequiredVersion is the velero client version the deploy runner must
// have installed. Every velero-invoking subcommand is gated on it.
const RequiredVersion = "v1.4.2"

var (
	Velero = "velero"

	DefaultVeleroNamespace = Velero

	DefaultVeleroDeploymentName = Velero

	DefaultVeleroIAMUser = Velero

	DefaultVeleroPolicyName = Velero

	DefaultProvider = "aws"

	DefaultAWSPluginImage = "velero/velero-plugin-for-aws:v1.1.0"
)

var (
	// DefaultExcludedNamespaces are left out of ad-hoc backups unless
	// the caller overrides them.
	DefaultExcludedNamespaces = []string{
		"default",
		"kube-system",
		"kube-public",
		"kube-node-lease",
		"velero",
	}

	DefaultIncludedNamespaces = []string{"default"}
)
