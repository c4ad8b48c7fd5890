package rule_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jkweon/txscreen/internal/rule"
)

func TestParseClass(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    rule.Class
		wantErr bool
	}

	tests := []testCase{
		{name: "AccountCategory", input: "account_category", want: rule.ClassAccountCategory},
		{name: "Trimmed", input: " virtual_asset ", want: rule.ClassVirtualAsset},
		{name: "Unknown", input: "fancy_class", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.ParseClass(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, rule.ErrInvalidClass)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRule_KeywordList(t *testing.T) {
	r := rule.Rule{Keywords: "증권/증권입금/ /"}
	assert.Equal(t, []string{"증권", "증권입금"}, r.KeywordList())

	empty := rule.Rule{Keywords: ""}
	assert.Empty(t, empty.KeywordList())
}

func TestFilterByClass(t *testing.T) {
	rules := []rule.Rule{
		{Class: rule.ClassAccountCategory, Keywords: "카드", Category: "카드거래"},
		{Class: rule.ClassIndustryCategory, Keywords: "552201", Category: "일반음식점"},
		{Class: rule.ClassAccountCategory, Keywords: "이자", Category: "이자수익"},
		{Class: "mystery", Keywords: "x", Category: "y"},
	}

	got := rule.FilterByClass(rules, rule.ClassAccountCategory)
	require.Len(t, got, 2)
	assert.Equal(t, "카드", got[0].Keywords)
	assert.Equal(t, "이자", got[1].Keywords)
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		r         rule.Rule
		setupMock func(m *rule.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			r:    rule.Rule{Class: rule.ClassAccountCategory, Keywords: "편의점", Category: "생활비"},
			setupMock: func(m *rule.MockRepository) {
				m.EXPECT().CreateRule(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "InvalidClass",
			r:       rule.Rule{Class: "nonsense", Keywords: "편의점", Category: "생활비"},
			wantErr: true,
		},
		{
			name: "RepoError",
			r:    rule.Rule{Class: rule.ClassSecurities, Keywords: "증권", Category: "증권거래"},
			setupMock: func(m *rule.MockRepository) {
				m.EXPECT().CreateRule(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := rule.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := rule.NewService(repo)
			err := svc.Create(context.Background(), tt.r)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Update_InvalidClassRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := rule.NewMockRepository(ctrl)
	svc := rule.NewService(repo)

	key := rule.Key{Class: rule.ClassAccountCategory, Keywords: "카드", Category: "카드거래"}
	err := svc.Update(context.Background(), key, rule.Rule{Class: "bogus"})
	assert.ErrorIs(t, err, rule.ErrInvalidClass)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := rule.NewMockRepository(ctrl)
	svc := rule.NewService(repo)

	key := rule.Key{Class: rule.ClassAccountCategory, Keywords: "카드", Category: "카드거래"}
	repo.EXPECT().DeleteRule(gomock.Any(), key).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), key))
}
