// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

// CmdFlags interface decouples this package from
// depending on cobra.Command/flags concrete types.
type CmdFlags interface {
	BoolVar(p *bool, name string, value bool, usage string)
	BoolVarP(p *bool, name, shorthand string, value bool, usage string)

	StringVar(p *string, name string, value string, usage string)
	StringVarP(p *string, name, shorthand string, value string, usage string)
}

const (
	dataFileFlag    = "data-file"
	sampleFlag      = "sample"
	basicSampleFlag = "basic-sample"
	verboseFlag     = "verbose"
	forceFlag       = "force"
	noTimestampFlag = "no-timestamp"
	outputFlag      = "output"
	settingsFlag    = "settings"
	debugFlag       = "debug"
)

// Set registers generate flags on cmdFlags.
func (o *GenerateOptions) Set(cmdFlags CmdFlags) {
	cmdFlags.StringVarP(&o.DataFile, dataFileFlag, "x", "", "Configuration document (.xml, .yml or .yaml) describing the build")
	cmdFlags.BoolVarP(&o.Sample, sampleFlag, "s", false, "Write an annotated sample configuration document and exit")
	cmdFlags.BoolVarP(&o.BasicSample, basicSampleFlag, "b", false, "Write a minimally annotated sample configuration document and exit")
	cmdFlags.BoolVarP(&o.Verbose, verboseFlag, "v", false, "Also print generated text to stdout")
	cmdFlags.BoolVarP(&o.Force, forceFlag, "f", false, "Overwrite an existing output file without confirmation")
	cmdFlags.BoolVarP(&o.NoTimestamp, noTimestampFlag, "n", false, "Do not add the generation date to the output")
	cmdFlags.StringVarP(&o.OutputPath, outputFlag, "o", DefaultOutputPath, "Output file path")
	cmdFlags.StringVar(&o.SettingsPath, settingsFlag, "", "Settings file supplying flag defaults (default '"+DefaultSettingsPath+"' if present)")
	cmdFlags.BoolVar(&o.Debug, debugFlag, false, "Enable debug output")
}
