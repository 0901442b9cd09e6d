package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// operation identifies one gx operation. The set is closed: every value
// has an entry in operations and a case in newOperationCmd.
type operation int

const (
	opSync operation = iota
	opAmend
	opPullMerge
	opGraphLog
	opBranchLog
	opMore
	opInstall
)

// operationInfo describes a registered operation.
type operationInfo struct {
	op    operation
	name  string
	short string
	group string
}

// operations lists every operation in the order "gx more" shows them.
var operations = []operationInfo{
	{opSync, "sync", "Publish, update and push the current branch", GroupWorkflow},
	{opAmend, "amend", "Add staged changes to the last commit, keeping its message", GroupWorkflow},
	{opPullMerge, "pullmerge", "Update the current and another branch, then merge it in", GroupWorkflow},
	{opGraphLog, "graphlog", "Show the commit graph", GroupHistory},
	{opBranchLog, "branchlog", "Show the first-parent history of a branch", GroupHistory},
	{opMore, "more", "List all operations", GroupSetup},
	{opInstall, "install", "Install gx into a repository and register git aliases", GroupSetup},
}

// aliasOperations returns the names of the operations installed as git
// aliases: all but install itself.
func aliasOperations() []string {
	var names []string
	for _, info := range operations {
		if info.op == opInstall {
			continue
		}
		names = append(names, info.name)
	}
	return names
}

// newOperationCmd builds the cobra command for one operation.
func newOperationCmd(info operationInfo) *cobra.Command {
	var c *cobra.Command
	switch info.op {
	case opSync:
		c = newSyncCmd()
	case opAmend:
		c = newAmendCmd()
	case opPullMerge:
		c = newPullMergeCmd()
	case opGraphLog:
		c = newGraphLogCmd()
	case opBranchLog:
		c = newBranchLogCmd()
	case opMore:
		c = newMoreCmd()
	case opInstall:
		c = newInstallCmd()
	default:
		panic(fmt.Sprintf("gx: unknown operation %d", info.op))
	}
	c.Short = info.short
	c.GroupID = info.group
	return c
}
