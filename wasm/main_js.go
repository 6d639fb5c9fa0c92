//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxedit/voxedit/go/api"
)

func records2vxg(this js.Value, args []js.Value) any {
	if len(args) < 4 {
		return js.ValueOf("missing records string and dimensions")
	}
	records := args[0].String()
	out, err := api.RecordsToSnapshot(args[1].Int(), args[2].Int(), args[3].Int(), records)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	uint8arr := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(uint8arr, out)
	return uint8arr
}

func vxg2records(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing snapshot bytes")
	}
	buf := make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(buf, args[0])
	records, err := api.SnapshotToRecords(buf)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(records)
}

func vxg2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing snapshot bytes")
	}
	buf := make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(buf, args[0])
	out, err := api.SnapshotToGLB(buf)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	uint8arr := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(uint8arr, out)
	return uint8arr
}

func main() {
	js.Global().Set("records2vxg", js.FuncOf(records2vxg))
	js.Global().Set("vxg2records", js.FuncOf(vxg2records))
	js.Global().Set("vxg2glb", js.FuncOf(vxg2glb))
	select {}
}
