package deb

// PackageFile represents a standard member name in the .deb archive (ar format).
type PackageFile string

const (
	// PkgDebianBinary is the format-version member, written out verbatim.
	PkgDebianBinary PackageFile = "debian-binary"

	// PkgControlTar is the name prefix of the control archive member
	// (control.tar, control.tar.gz, control.tar.xz).
	PkgControlTar PackageFile = "control.tar"

	// PkgDataTar is the name prefix of the payload archive member
	// (data.tar, data.tar.gz, data.tar.xz).
	PkgDataTar PackageFile = "data.tar"

	// PkgSignature is the detached signature member added by dpkg-sig.
	PkgSignature PackageFile = "_gpgorigin"
)

// Subdirectories of the output directory the nested archives extract into.
const (
	ControlDir = "control"
	DataDir    = "data"
)

const (
	// DefaultMaxDepth bounds recursive descent into nested archives.
	DefaultMaxDepth = 10

	// DefaultOutputDir is where extraction lands when no directory is given.
	DefaultOutputDir = "./extracted"
)

// ControlField represents a standard field in a Debian control file.
type ControlField string

const (
	FieldPackage       ControlField = "Package"
	FieldVersion       ControlField = "Version"
	FieldArchitecture  ControlField = "Architecture"
	FieldMaintainer    ControlField = "Maintainer"
	FieldDescription   ControlField = "Description"
	FieldSection       ControlField = "Section"
	FieldPriority      ControlField = "Priority"
	FieldHomepage      ControlField = "Homepage"
	FieldEssential     ControlField = "Essential"
	FieldDepends       ControlField = "Depends"
	FieldPreDepends    ControlField = "Pre-Depends"
	FieldRecommends    ControlField = "Recommends"
	FieldSuggests      ControlField = "Suggests"
	FieldConflicts     ControlField = "Conflicts"
	FieldBreaks        ControlField = "Breaks"
	FieldReplaces      ControlField = "Replaces"
	FieldProvides      ControlField = "Provides"
	FieldSource        ControlField = "Source"
	FieldInstalledSize ControlField = "Installed-Size"
)

// ControlFile represents a standard file found in the control archive.
type ControlFile string

const (
	FileControl   ControlFile = "control"
	FileMd5sums   ControlFile = "md5sums"
	FileConffiles ControlFile = "conffiles"
	FilePreinst   ControlFile = "preinst"
	FilePostinst  ControlFile = "postinst"
	FilePrerm     ControlFile = "prerm"
	FilePostrm    ControlFile = "postrm"
)
