package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mjezek/sol25interp/internal/astxml"
	"github.com/mjezek/sol25interp/internal/interp/errors"
)

// runProgram parses doc, loads it, runs it, and returns stdout plus any
// error that unwound the run.
func runProgram(t *testing.T, doc, stdin string) (string, error) {
	t.Helper()
	program, err := astxml.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(stdin))
	if err := ev.Load(program); err != nil {
		return out.String(), err
	}
	err = ev.Run()
	return out.String(), err
}

// TestSpecExample1 mirrors spec §8's first testable scenario:
// (Integer new plus: 2) asString print => "2"
func TestSpecExample1(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="result"/><expr>
  <send selector="print">
    <expr>
      <send selector="asString">
        <expr>
          <send selector="plus:">
            <expr><send selector="new"><expr><literal class="class" value="Integer"/></expr></send></expr>
            <arg order="1"><expr><literal class="Integer" value="2"/></expr></arg>
          </send>
        </expr>
      </send>
    </expr>
  </send>
</expr></assign>
</block>
</method>
</class>
</program>`
	out, err := runProgram(t, doc, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2" {
		t.Errorf("expected stdout %q, got %q", "2", out)
	}
}

// TestSpecExample2 mirrors spec §8's second scenario:
// (5 greaterThan: 2) ifTrue: ['y' print] ifFalse: ['n' print] => "y"
func TestSpecExample2(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="result"/><expr>
  <send selector="ifTrue:ifFalse:">
    <expr>
      <send selector="greaterThan:">
        <expr><literal class="Integer" value="5"/></expr>
        <arg order="1"><expr><literal class="Integer" value="2"/></expr></arg>
      </send>
    </expr>
    <arg order="1"><expr><block arity="0">
      <assign order="1"><var name="r"/><expr><send selector="print"><expr><literal class="String" value="y"/></expr></send></expr></assign>
    </block></expr></arg>
    <arg order="2"><expr><block arity="0">
      <assign order="1"><var name="r"/><expr><send selector="print"><expr><literal class="String" value="n"/></expr></send></expr></assign>
    </block></expr></arg>
  </send>
</expr></assign>
</block>
</method>
</class>
</program>`
	out, err := runProgram(t, doc, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "y" {
		t.Errorf("expected stdout %q, got %q", "y", out)
	}
}

// TestSpecExample3 mirrors spec §8's third scenario:
// | i | i := 1. [i greaterThan: 3] whileTrue: [i asString print. i := i plus: 1] => "123"
func TestSpecExample3(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="i"/><expr><literal class="Integer" value="1"/></expr></assign>
<assign order="2"><var name="r"/><expr>
  <send selector="whileTrue:">
    <expr><block arity="0">
      <assign order="1"><var name="cond"/><expr>
        <send selector="greaterThan:">
          <expr><var name="i"/></expr>
          <arg order="1"><expr><literal class="Integer" value="3"/></expr></arg>
        </send>
      </expr></assign>
    </block></expr>
    <arg order="1"><expr><block arity="0">
      <assign order="1"><var name="p"/><expr>
        <send selector="print">
          <expr><send selector="asString"><expr><var name="i"/></expr></send></expr>
        </send>
      </expr></assign>
      <assign order="2"><var name="i"/><expr>
        <send selector="plus:">
          <expr><var name="i"/></expr>
          <arg order="1"><expr><literal class="Integer" value="1"/></expr></arg>
        </send>
      </expr></assign>
    </block></expr></arg>
  </send>
</expr></assign>
</block>
</method>
</class>
</program>`
	out, err := runProgram(t, doc, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "123" {
		t.Errorf("expected stdout %q, got %q", "123", out)
	}
}

// TestSpecExample4 mirrors spec §8's fourth scenario:
// 3 timesRepeat: [:n | n asString print] => "123"
func TestSpecExample4(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="r"/><expr>
  <send selector="timesRepeat:">
    <expr><literal class="Integer" value="3"/></expr>
    <arg order="1"><expr><block arity="1">
      <parameter name="n" order="1"/>
      <assign order="1"><var name="p"/><expr>
        <send selector="print"><expr><send selector="asString"><expr><var name="n"/></expr></send></expr></send>
      </expr></assign>
    </block></expr></arg>
  </send>
</expr></assign>
</block>
</method>
</class>
</program>`
	out, err := runProgram(t, doc, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "123" {
		t.Errorf("expected stdout %q, got %q", "123", out)
	}
}

// TestSpecExample5 mirrors spec §8's fifth scenario: class A#m returns 1;
// class B < A overrides m to (super m) plus: 10; B new m asString print => "11"
func TestSpecExample5(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="A" parent="Object">
<method selector="m">
<block arity="0">
<assign order="1"><var name="r"/><expr><literal class="Integer" value="1"/></expr></assign>
</block>
</method>
</class>
<class name="B" parent="A">
<method selector="m">
<block arity="0">
<assign order="1"><var name="r"/><expr>
  <send selector="plus:">
    <expr><send selector="m"><expr><var name="super"/></expr></send></expr>
    <arg order="1"><expr><literal class="Integer" value="10"/></expr></arg>
  </send>
</expr></assign>
</block>
</method>
</class>
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="r"/><expr>
  <send selector="print">
    <expr><send selector="asString"><expr>
      <send selector="m"><expr><send selector="new"><expr><literal class="class" value="B"/></expr></send></expr></send>
    </expr></send></expr>
  </send>
</expr></assign>
</block>
</method>
</class>
</program>`
	out, err := runProgram(t, doc, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "11" {
		t.Errorf("expected stdout %q, got %q", "11", out)
	}
}

// TestSpecExample6 mirrors spec §8's sixth scenario: (String read) asInteger
// asString print reads a line from stdin and prints either the parsed
// Integer or "nil".
func TestSpecExample6(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="r"/><expr>
  <send selector="print">
    <expr><send selector="asString"><expr>
      <send selector="asInteger"><expr>
        <send selector="read"><expr><literal class="class" value="String"/></expr></send>
      </expr></send>
    </expr></send></expr>
  </send>
</expr></assign>
</block>
</method>
</class>
</program>`
	out, err := runProgram(t, doc, "42\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "42" {
		t.Errorf("expected stdout %q for numeric input, got %q", "42", out)
	}

	out, err = runProgram(t, doc, "abc\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "nil" {
		t.Errorf("expected stdout %q for non-numeric input, got %q", "nil", out)
	}
}

// TestUnknownSelectorIsDNU checks that an unrecognized selector on a
// built-in receiver unwinds as INTERPRET_DNU.
func TestUnknownSelectorIsDNU(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="r"/><expr>
  <send selector="frobnicate"><expr><literal class="Integer" value="1"/></expr></send>
</expr></assign>
</block>
</method>
</class>
</program>`
	_, err := runProgram(t, doc, "")
	ie, ok := errors.As(err)
	if !ok || ie.Kind != errors.DNU {
		t.Fatalf("expected INTERPRET_DNU, got %v", err)
	}
}

// TestParameterReassignmentIsCollision checks that assigning to a block's
// own parameter raises PARSE_COLLISION (spec §4.3, §8).
func TestParameterReassignmentIsCollision(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="r"/><expr>
  <send selector="timesRepeat:">
    <expr><literal class="Integer" value="1"/></expr>
    <arg order="1"><expr><block arity="1">
      <parameter name="n" order="1"/>
      <assign order="1"><var name="n"/><expr><literal class="Integer" value="9"/></expr></assign>
    </block></expr></arg>
  </send>
</expr></assign>
</block>
</method>
</class>
</program>`
	_, err := runProgram(t, doc, "")
	ie, ok := errors.As(err)
	if !ok || ie.Kind != errors.ParseCollision {
		t.Fatalf("expected PARSE_COLLISION, got %v", err)
	}
}

// TestDivisionByZeroIsValueError checks Integer>>divBy: 0 unwinds as
// INTERPRET_VALUE (spec §4.7).
func TestDivisionByZeroIsValueError(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="r"/><expr>
  <send selector="divBy:">
    <expr><literal class="Integer" value="1"/></expr>
    <arg order="1"><expr><literal class="Integer" value="0"/></expr></arg>
  </send>
</expr></assign>
</block>
</method>
</class>
</program>`
	_, err := runProgram(t, doc, "")
	ie, ok := errors.As(err)
	if !ok || ie.Kind != errors.Value {
		t.Fatalf("expected INTERPRET_VALUE, got %v", err)
	}
}

// TestMissingMainIsParseMain checks that a program with no Main class
// unwinds as PARSE_MAIN before any code ever runs.
func TestMissingMainIsParseMain(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Foo" parent="Object">
</class>
</program>`
	program, err := astxml.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""))
	if err := ev.Load(program); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	err = ev.Run()
	ie, ok := errors.As(err)
	if !ok || ie.Kind != errors.ParseMain {
		t.Fatalf("expected PARSE_MAIN, got %v", err)
	}
}

// TestDynamicAttributeGetSet exercises phase 9: a user object's
// getter/setter pair on an attribute that collides with nothing.
func TestDynamicAttributeGetSet(t *testing.T) {
	const doc = `<program language="SOL25">
<class name="Point" parent="Object">
</class>
<class name="Main" parent="Object">
<method selector="run">
<block arity="0">
<assign order="1"><var name="p"/><expr>
  <send selector="new"><expr><literal class="class" value="Point"/></expr></send>
</expr></assign>
<assign order="2"><var name="p2"/><expr>
  <send selector="x:">
    <expr><var name="p"/></expr>
    <arg order="1"><expr><literal class="Integer" value="7"/></expr></arg>
  </send>
</expr></assign>
<assign order="3"><var name="r"/><expr>
  <send selector="print"><expr>
    <send selector="asString"><expr>
      <send selector="x"><expr><var name="p2"/></expr></send>
    </expr></send>
  </expr></send>
</expr></assign>
</block>
</method>
</class>
</program>`
	out, err := runProgram(t, doc, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7" {
		t.Errorf("expected stdout %q, got %q", "7", out)
	}
}
