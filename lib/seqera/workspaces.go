// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package seqera

import (
	"context"
	"fmt"
	"strconv"

	"github.com/seqcanvas/seqcanvas/lib/apperr"
)

type wireUserInfoResponse struct {
	User struct {
		ID int64 `json:"id"`
	} `json:"user"`
}

type wireOrgWorkspace struct {
	OrgID         int64  `json:"orgId"`
	OrgName       string `json:"orgName"`
	WorkspaceID   int64  `json:"workspaceId"`
	WorkspaceName string `json:"workspaceName"`
}

type wireWorkspacesResponse struct {
	OrgsAndWorkspaces []wireOrgWorkspace `json:"orgsAndWorkspaces"`
}

// ResolveWorkspace maps an (organization name, workspace name) pair to
// numeric ids in two steps: the token's identity is resolved to a user
// id via /user-info, then the user's visible org/workspace tuples are
// scanned for an exact match on both names. First match wins when the
// registry reports duplicates.
//
// No match is not an error: the result is (nil, nil) and the caller
// decides whether an unscoped query is acceptable. Transport and HTTP
// failures return registry errors as usual.
func (client *Client) ResolveWorkspace(ctx context.Context, orgName, workspaceName string) (*WorkspaceRef, error) {
	var userInfo wireUserInfoResponse
	if err := client.get(ctx, "/user-info", &userInfo); err != nil {
		return nil, fmt.Errorf("resolving workspace %s/%s: %w", orgName, workspaceName, err)
	}
	if userInfo.User.ID == 0 {
		return nil, apperr.Registryf(0, "The run registry did not report a user id for this token.")
	}

	var workspaces wireWorkspacesResponse
	path := "/user/" + strconv.FormatInt(userInfo.User.ID, 10) + "/workspaces"
	if err := client.get(ctx, path, &workspaces); err != nil {
		return nil, fmt.Errorf("resolving workspace %s/%s: %w", orgName, workspaceName, err)
	}

	for _, entry := range workspaces.OrgsAndWorkspaces {
		if entry.OrgName == orgName && entry.WorkspaceName == workspaceName {
			return &WorkspaceRef{OrgID: entry.OrgID, WorkspaceID: entry.WorkspaceID}, nil
		}
	}

	client.logger.Info("no workspace match",
		"organization", orgName,
		"workspace", workspaceName,
		"visible", len(workspaces.OrgsAndWorkspaces),
	)
	return nil, nil
}
