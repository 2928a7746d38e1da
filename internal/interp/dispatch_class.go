package interp

import (
	"io"

	"github.com/mjezek/sol25interp/internal/interp/errors"
	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// sendClassMessage implements phase 1: `new`, `from:`, `read`, and
// DNU for everything else sent to a class-name receiver (spec §4.5
// phase 1).
func (ev *Evaluator) sendClassMessage(class *runtime.ClassDescriptor, selector string, args []runtime.Value) (runtime.Value, error) {
	switch {
	case selector == "new" && len(args) == 0:
		return ev.classNew(class)
	case selector == "from:" && len(args) == 1:
		return ev.classFrom(class, args[0])
	case selector == "read" && len(args) == 0:
		if class.Name != "String" {
			return nil, errors.NewDNU(class.Name+" class", selector)
		}
		return ev.readLine()
	default:
		return nil, errors.NewDNU(class.Name+" class", selector)
	}
}

func (ev *Evaluator) classNew(class *runtime.ClassDescriptor) (runtime.Value, error) {
	switch class.Name {
	case "Nil":
		return runtime.Nil, nil
	case "True":
		return runtime.True, nil
	case "False":
		return runtime.False, nil
	case "Integer":
		return runtime.NewInteger(0), nil
	case "String":
		return runtime.NewString(""), nil
	case "Block":
		return nil, errors.NewType("Block new", errors.ErrMsgBlockNotInstantiable, "new")
	}
	obj := runtime.NewObject(class)
	switch {
	case class.IsOrDescendsFrom("Integer"):
		obj.SetInternalValue(runtime.NewInteger(0))
	case class.IsOrDescendsFrom("String"):
		obj.SetInternalValue(runtime.NewString(""))
	}
	return obj, nil
}

func (ev *Evaluator) classFrom(class *runtime.ClassDescriptor, source runtime.Value) (runtime.Value, error) {
	sourceClass, err := ev.classOf(source)
	if err != nil {
		return nil, err
	}
	if !runtime.Compatible(class, sourceClass) {
		return nil, errors.NewValue("from:", errors.ErrMsgFromIncompatible, class.Name, sourceClass.Name)
	}
	switch class.Name {
	case "Nil":
		return runtime.Nil, nil
	case "True":
		return runtime.True, nil
	case "False":
		return runtime.False, nil
	case "Integer":
		iv, ok := runtime.AsInteger(source)
		if !ok {
			return nil, errors.NewValue("from:", errors.ErrMsgOperandNotInt, "from:")
		}
		return runtime.NewInteger(iv.N), nil
	case "String":
		sv, ok := runtime.AsString(source)
		if !ok {
			return nil, errors.NewValue("from:", errors.ErrMsgFromIncompatible, class.Name, sourceClass.Name)
		}
		return runtime.NewString(sv.S), nil
	case "Block":
		return nil, errors.NewType("Block from:", errors.ErrMsgBlockNotInstantiable, "from:")
	}

	obj := runtime.NewObject(class)
	switch source.Kind() {
	case runtime.KindInteger, runtime.KindString, runtime.KindBlock:
		obj.SetInternalValue(source)
	default:
		if srcObj, ok := runtime.AsObject(source); ok {
			if iv, ok := srcObj.InternalValue(); ok {
				obj.SetInternalValue(iv)
			}
			var copyErr error
			srcObj.Attrs().Range(func(name string, v runtime.Value) bool {
				if name == runtime.InternalValueAttr {
					return true
				}
				if _, err := ev.send(recv{kind: recvValue, value: obj}, name+":", []runtime.Value{v}); err != nil {
					copyErr = err
					return false
				}
				return true
			})
			if copyErr != nil {
				return nil, copyErr
			}
		}
	}
	return obj, nil
}

// readLine implements the String class's `read` message (spec §4.5
// phase 1, §6 stdin): one line from standard input, or an empty String
// on EOF.
func (ev *Evaluator) readLine() (runtime.Value, error) {
	line, err := ev.Stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.NewInternal("reading stdin: %s", err.Error())
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return runtime.NewString(line), nil
}
