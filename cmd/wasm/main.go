//go:build js && wasm

// Command wasm exposes the trajectory generator to the storybook tooling via
// WebAssembly. After loading, it registers two global JavaScript functions:
//
//	generateTrajectories(requestJSON) -> setJSON
//	renderFixture(requestJSON, exportName) -> "\nexport const <exportName> = {...}"
//
// requestJSON is an engine.Request ({"conflict", "count", "seed"}).
package main

import (
	"syscall/js"

	"github.com/cxd309/trajgen/internal/engine"
	"github.com/cxd309/trajgen/internal/fixture"
)

func main() {
	js.Global().Set("generateTrajectories", js.FuncOf(generateTrajectories))
	js.Global().Set("renderFixture", js.FuncOf(renderFixture))
	select {}
}

func jsError(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}

func generateTrajectories(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no request provided"}
	}
	result, err := engine.RunJSON(args[0].String())
	if err != nil {
		return jsError(err)
	}
	return result
}

func renderFixture(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return map[string]any{"error": "usage: renderFixture(request, exportName)"}
	}
	req, err := engine.ParseRequest(args[0].String())
	if err != nil {
		return jsError(err)
	}
	set, err := engine.Generate(req)
	if err != nil {
		return jsError(err)
	}
	block, err := fixture.Render(args[1].String(), set)
	if err != nil {
		return jsError(err)
	}
	return string(block)
}
