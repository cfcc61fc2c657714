package main

type PadCmd struct {
	Input     string `arg:"" name:"input-file" help:"Raw stage2 blob." type:"path"`
	Output    string `arg:"" name:"output-file" help:"Padded stage2 image." type:"path"`
	NoClobber bool   `optional:"" help:"Refuse to overwrite an existing output file."`
}

func (p *PadCmd) Run(c *Context) error {
	return c.config.PadFile(p.Input, p.Output, p.NoClobber)
}
