//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/inamate/inamate/editor-go/internal/document"
	"github.com/inamate/inamate/editor-go/internal/engine"
	"github.com/inamate/inamate/editor-go/internal/operator"
)

var eng *engine.Engine

func main() {
	eng = engine.NewEngine(engine.Options{})

	// Create the editor API object
	editor := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	editor.Set("loadScene", js.FuncOf(loadScene))
	editor.Set("loadSampleScene", js.FuncOf(loadSampleScene))
	editor.Set("addEntity", js.FuncOf(addEntity))
	editor.Set("removeEntity", js.FuncOf(removeEntity))
	editor.Set("setSelection", js.FuncOf(setSelection))
	editor.Set("setViewport", js.FuncOf(setViewport))
	editor.Set("setOptions", js.FuncOf(setOptions))
	editor.Set("setXLocked", js.FuncOf(lockSetter(eng.SetXLocked)))
	editor.Set("setYLocked", js.FuncOf(lockSetter(eng.SetYLocked)))
	editor.Set("setDiagLocked", js.FuncOf(lockSetter(eng.SetDiagLocked)))
	editor.Set("setRotateLocked", js.FuncOf(lockSetter(eng.SetRotateLocked)))
	editor.Set("onFrame", js.FuncOf(onFrame))

	// --- Input ---
	editor.Set("hover", js.FuncOf(hover))
	editor.Set("pointerDown", js.FuncOf(pointerDown))
	editor.Set("pointerMove", js.FuncOf(pointerMove))
	editor.Set("pointerUp", js.FuncOf(pointerUp))
	editor.Set("touchStart", js.FuncOf(touchInput(eng.TouchStart)))
	editor.Set("touchMove", js.FuncOf(touchInput(eng.TouchMove)))
	editor.Set("touchEnd", js.FuncOf(touchInput(eng.TouchEnd)))

	// --- Queries (frontend ← backend) ---
	editor.Set("render", js.FuncOf(render))
	editor.Set("hitTest", js.FuncOf(hitTest))
	editor.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	editor.Set("getSelection", js.FuncOf(getSelection))
	editor.Set("getScene", js.FuncOf(getScene))
	editor.Set("getState", js.FuncOf(getState))

	// Register on global scope
	js.Global().Set("inamateEditor", editor)

	// Signal that WASM is ready
	js.Global().Set("inamateWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorResult(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func okResult() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// point reads x and y from the first two arguments.
func point(args []js.Value) (float64, float64, bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	return args[0].Float(), args[1].Float(), true
}

// --- Command Handlers ---

func loadScene(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing scene JSON"})
	}
	if err := eng.LoadScene(args[0].String()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func loadSampleScene(this js.Value, args []js.Value) interface{} {
	sceneID := "scene_sample"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		sceneID = args[0].String()
	}
	if err := eng.LoadSampleScene(sceneID); err != nil {
		return errorResult(err)
	}
	return okResult()
}

// addEntity takes a node as JSON and returns the new entity's id.
func addEntity(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing node JSON"})
	}
	var n document.Node
	if err := json.Unmarshal([]byte(args[0].String()), &n); err != nil {
		return errorResult(err)
	}
	id, err := eng.AddNode(n)
	if err != nil {
		return errorResult(err)
	}
	return js.ValueOf(map[string]interface{}{"id": id})
}

func removeEntity(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing entity id"})
	}
	if err := eng.RemoveEntity(args[0].String()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		eng.SetSelection(nil)
		return nil
	}

	arr := args[0]
	length := arr.Length()
	ids := make([]string, length)
	for i := 0; i < length; i++ {
		ids[i] = arr.Index(i).String()
	}
	eng.SetSelection(ids)
	return nil
}

func setViewport(this js.Value, args []js.Value) interface{} {
	if w, h, ok := point(args); ok {
		eng.SetViewport(w, h)
	}
	return nil
}

// setOptions takes an object with limitInCanvas, lockGroupResize and
// touchBoxSelect booleans. Missing keys are false.
func setOptions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		return nil
	}
	o := args[0]
	flag := func(key string) bool {
		v := o.Get(key)
		return v.Type() == js.TypeBoolean && v.Bool()
	}
	eng.SetOperatorOptions(operator.Options{
		LimitInCanvas:   flag("limitInCanvas"),
		LockGroupResize: flag("lockGroupResize"),
		TouchBoxSelect:  flag("touchBoxSelect"),
	})
	return nil
}

func lockSetter(set func(bool)) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		set(args[0].Truthy())
		return nil
	}
}

// onFrame registers a callback that receives every redraw as a JSON draw
// command list.
func onFrame(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		eng.SetFrameListener(nil)
		return nil
	}
	cb := args[0]
	eng.SetFrameListener(func(commands []engine.DrawCommand) {
		data, _ := engine.DrawCommandsToJSON(commands)
		cb.Invoke(data)
	})
	return nil
}

// --- Input Handlers ---

func hover(this js.Value, args []js.Value) interface{} {
	x, y, ok := point(args)
	if !ok {
		return nil
	}
	return eng.Hover(x, y)
}

func pointerDown(this js.Value, args []js.Value) interface{} {
	if x, y, ok := point(args); ok {
		eng.PointerDown(x, y)
	}
	return nil
}

// pointerMove takes x, y and the movement since the last event.
func pointerMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return nil
	}
	return eng.PointerMove(args[0].Float(), args[1].Float(), args[2].Float(), args[3].Float())
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	if x, y, ok := point(args); ok {
		eng.PointerUp(x, y)
	}
	return nil
}

func touchInput(fn func(x, y float64)) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		if x, y, ok := point(args); ok {
			fn(x, y)
		}
		return nil
	}
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return eng.Render()
}

func hitTest(this js.Value, args []js.Value) interface{} {
	x, y, ok := point(args)
	if !ok {
		return ""
	}
	return eng.HitTest(x, y)
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return eng.GetSelectionBounds()
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return eng.GetSelection()
}

func getScene(this js.Value, args []js.Value) interface{} {
	return eng.GetScene()
}

func getState(this js.Value, args []js.Value) interface{} {
	return eng.GetState()
}
