package exec

import (
	"bytes"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	cmd := New("git", "rev-parse", "--show-toplevel")
	if cmd == nil {
		t.Fatal("New() returned nil")
	}

	if cmd.Program() != "git" {
		t.Errorf("expected program 'git', got: %s", cmd.Program())
	}

	want := []string{"rev-parse", "--show-toplevel"}
	if !reflect.DeepEqual(cmd.Arguments(), want) {
		t.Errorf("expected args %v, got: %v", want, cmd.Arguments())
	}

	if cmd.policy != PolicyFatal {
		t.Errorf("expected default policy fatal, got: %s", cmd.policy)
	}
}

func TestArgsAppend(t *testing.T) {
	cmd := New("make").Arg("-j8").Args("all", "test").Arg("ARGS=-j8")

	want := "make -j8 all test ARGS=-j8"
	if cmd.String() != want {
		t.Errorf("expected %q, got: %q", want, cmd.String())
	}
}

func TestStringWithoutArgs(t *testing.T) {
	if got := New("true").String(); got != "true" {
		t.Errorf("expected 'true', got: %q", got)
	}
}

func TestSettersLastWriteWins(t *testing.T) {
	cmd := New("sh").
		WithDir("/first").
		WithDir("/second").
		SetEnv("KEY", "one").
		WithEnv(map[string]string{"KEY": "two", "OTHER": "x"}).
		SetEnv("KEY", "three").
		OnError(PolicyReturn).
		OnError(PolicyFatal).
		WithVerbose(true).
		WithVerbose(false).
		WithDryRun(true)

	if cmd.dir != "/second" {
		t.Errorf("expected dir '/second', got: %s", cmd.dir)
	}
	if cmd.env["KEY"] != "three" {
		t.Errorf("expected KEY=three, got: %s", cmd.env["KEY"])
	}
	if len(cmd.env) != 2 {
		t.Errorf("expected 2 overrides, got: %d", len(cmd.env))
	}
	if cmd.policy != PolicyFatal {
		t.Errorf("expected policy fatal, got: %s", cmd.policy)
	}
	if cmd.verbose {
		t.Error("expected verbose to be false")
	}
	if !cmd.dryRun {
		t.Error("expected dry-run to be true")
	}
}

func TestArgumentsIsACopy(t *testing.T) {
	cmd := New("echo", "a")
	args := cmd.Arguments()
	args[0] = "mutated"

	if cmd.String() != "echo a" {
		t.Errorf("expected command to be unchanged, got: %q", cmd.String())
	}
}

func TestNewCopiesArgs(t *testing.T) {
	args := []string{"a", "b"}
	cmd := New("echo", args...)
	args[0] = "mutated"

	if cmd.String() != "echo a b" {
		t.Errorf("expected command to be unchanged, got: %q", cmd.String())
	}
}

func TestClone(t *testing.T) {
	original := New("sh", "-c").SetEnv("A", "1").WithDir("/tmp")
	clone := original.Clone().Arg("exit 0").SetEnv("B", "2").WithDir("/")

	if original.String() != "sh -c" {
		t.Errorf("expected original args unchanged, got: %q", original.String())
	}
	if _, ok := original.env["B"]; ok {
		t.Error("expected original env to not contain clone's override")
	}
	if original.dir != "/tmp" {
		t.Errorf("expected original dir unchanged, got: %s", original.dir)
	}
	if clone.env["A"] != "1" {
		t.Error("expected clone to inherit overrides")
	}
}

func TestBuilderPerformsNoIO(t *testing.T) {
	var diag bytes.Buffer
	_ = New("glue-no-such-program").
		WithDiagnostics(&diag).
		WithVerbose(true).
		WithDryRun(true).
		WithDir("/does/not/exist").
		SetEnv("K", "V").
		String()

	if diag.Len() != 0 {
		t.Errorf("expected no diagnostics before launch, got: %q", diag.String())
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{
			name: "verbose",
			cmd:  New("echo", "hi").WithVerbose(true),
			want: "LOG: echo hi\n",
		},
		{
			name: "dry run",
			cmd:  New("echo", "hi").WithDryRun(true).WithVerbose(true),
			want: "DRY: echo hi\n",
		},
		{
			name: "with directory and env",
			cmd:  New("make", "all").WithDryRun(true).WithDir("/src/build").SetEnv("CC", "clang").SetEnv("CXX", "clang++"),
			want: "DRY: make all\n\t- executing from directory: \"/src/build\"\n\t- overriding 2 environment variables\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cmd.describe(&buf)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got: %q", tt.want, buf.String())
			}
		})
	}
}
