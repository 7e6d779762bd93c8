package cli

var RunWithLogOutput = run
