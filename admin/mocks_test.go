// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/cama/study"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context, f study.Filter) ([]study.Study, error) {
	arguments := m.Called(ctx, f)
	studies, _ := arguments.Get(0).([]study.Study)
	return studies, arguments.Error(1)
}

func (m *mockStore) Get(ctx context.Context, id int64) (study.Study, error) {
	arguments := m.Called(ctx, id)
	return arguments.Get(0).(study.Study), arguments.Error(1)
}

func (m *mockStore) Create(ctx context.Context, s study.Study) (study.Study, error) {
	arguments := m.Called(ctx, s)
	return arguments.Get(0).(study.Study), arguments.Error(1)
}

func (m *mockStore) Approve(ctx context.Context, id int64) (study.Study, error) {
	arguments := m.Called(ctx, id)
	return arguments.Get(0).(study.Study), arguments.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
