// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package template

// DefaultSpecTemplate seeds spec.md in a new feature directory.
const DefaultSpecTemplate = `# Feature Specification

## Summary

Describe the feature in one or two sentences: what it does and who needs it.

## User Scenarios

- As a ..., I want ... so that ...

## Requirements

- R1: ...
- R2: ...

## Out of Scope

- ...

## Open Questions

- ...
`

// DefaultPlanTemplate seeds plan.md once a spec has been approved.
const DefaultPlanTemplate = `# Implementation Plan

## Approach

Summarize the technical approach and the main design decisions.

## Phases

1. ...
2. ...

## Risks

- ...
`

// DefaultTasksTemplate seeds tasks.md for the execution stage.
const DefaultTasksTemplate = `# Tasks

- [ ] T1: ...
- [ ] T2: ...
`
