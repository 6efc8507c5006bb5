package config

// Yangofile represents the structure of the yango.yaml configuration file.
type Yangofile struct {
	BaseDir             string   `yaml:"baseDir"`
	TargetDir           string   `yaml:"targetDir"`
	SourceDirectory     string   `yaml:"sourceDirectory"`
	Directories         []string `yaml:"directories"`
	Includes            []string `yaml:"includes"`
	Excludes            []string `yaml:"excludes"`
	Encoding            string   `yaml:"encoding"`
	FailOnError         *bool    `yaml:"failOnError"`
	Tool                string   `yaml:"tool"`
	RecommendedVersion  string   `yaml:"recommendedVersion"`
	ModulePath          string   `yaml:"modulePath"`
	Timeout             string   `yaml:"timeout"`
	Jobs                *int     `yaml:"jobs"`
	CacheFailedAttempts bool     `yaml:"cacheFailedAttempts"`
	FormatArgs          []string `yaml:"formatArgs"`
	ConvertArgs         []string `yaml:"convertArgs"`
	CompileArgs         []string `yaml:"compileArgs"`
}
