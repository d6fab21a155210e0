package main

import (
	"errors"
	"strings"
	"testing"
)

func TestCommandArgs(t *testing.T) {
	var ca = NewCommandArgs([]string{"tests", "tactic", "-depth", "3", "-eval", "material", "-bad"})
	if ca.CommandName() != "tactic" {
		t.Error(ca.CommandName())
	}
	if got := ca.GetInt("depth", 1); got != 3 {
		t.Error(got)
	}
	if got := ca.GetString("eval", ""); got != "material" {
		t.Error(got)
	}
	if got := ca.GetInt("eval", 7); got != 7 {
		t.Error(got)
	}
	if got := ca.GetString("bad", "x"); got != "x" {
		t.Error(got)
	}
}

func TestCommandHandler(t *testing.T) {
	var errDone = errors.New("done")
	var ch = NewCommandHandler()
	ch.Add("run", func() error { return errDone })
	if err := ch.Execute("run"); err != errDone {
		t.Error(err)
	}
	if err := ch.Execute("walk"); err == nil || !strings.Contains(err.Error(), "run") {
		t.Error(err)
	}
}

func TestMapPath(t *testing.T) {
	if got := mapPath("/tmp/x.epd"); got != "/tmp/x.epd" {
		t.Error(got)
	}
	if got := mapPath("~/x.epd"); strings.HasPrefix(got, "~") {
		t.Error(got)
	}
}
