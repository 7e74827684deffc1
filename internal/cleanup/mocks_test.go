package cleanup

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	gluetypes "github.com/aws/aws-sdk-go-v2/service/glue/types"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// recorder collects the ordered sequence of service calls issued by a sweep.
type recorder struct {
	calls []string
}

func (r *recorder) record(call string) {
	r.calls = append(r.calls, call)
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) indexOf(call string) int {
	for i, c := range r.calls {
		if c == call {
			return i
		}
	}
	return -1
}

type mockGlue struct {
	rec        *recorder
	databases  []gluetypes.Database
	tablesByDB map[string][]gluetypes.Table
	rulesets   []gluetypes.DataQualityRulesetListDetails
	failOn     map[string]error
}

func (m *mockGlue) fail(op string) error {
	if m.failOn == nil {
		return nil
	}
	return m.failOn[op]
}

func (m *mockGlue) DeleteJob(_ context.Context, params *glue.DeleteJobInput, _ ...func(*glue.Options)) (*glue.DeleteJobOutput, error) {
	m.rec.record("DeleteJob:" + aws.ToString(params.JobName))
	if err := m.fail("DeleteJob"); err != nil {
		return nil, err
	}
	return &glue.DeleteJobOutput{}, nil
}

func (m *mockGlue) GetDatabases(_ context.Context, _ *glue.GetDatabasesInput, _ ...func(*glue.Options)) (*glue.GetDatabasesOutput, error) {
	m.rec.record("GetDatabases")
	if err := m.fail("GetDatabases"); err != nil {
		return nil, err
	}
	return &glue.GetDatabasesOutput{DatabaseList: m.databases}, nil
}

func (m *mockGlue) GetTables(_ context.Context, params *glue.GetTablesInput, _ ...func(*glue.Options)) (*glue.GetTablesOutput, error) {
	db := aws.ToString(params.DatabaseName)
	m.rec.record("GetTables:" + db)
	if err := m.fail("GetTables"); err != nil {
		return nil, err
	}
	return &glue.GetTablesOutput{TableList: m.tablesByDB[db]}, nil
}

func (m *mockGlue) DeleteTable(_ context.Context, params *glue.DeleteTableInput, _ ...func(*glue.Options)) (*glue.DeleteTableOutput, error) {
	m.rec.record("DeleteTable:" + aws.ToString(params.DatabaseName) + "." + aws.ToString(params.Name))
	if err := m.fail("DeleteTable"); err != nil {
		return nil, err
	}
	return &glue.DeleteTableOutput{}, nil
}

func (m *mockGlue) DeleteDatabase(_ context.Context, params *glue.DeleteDatabaseInput, _ ...func(*glue.Options)) (*glue.DeleteDatabaseOutput, error) {
	m.rec.record("DeleteDatabase:" + aws.ToString(params.Name))
	if err := m.fail("DeleteDatabase"); err != nil {
		return nil, err
	}
	return &glue.DeleteDatabaseOutput{}, nil
}

func (m *mockGlue) DeleteConnection(_ context.Context, params *glue.DeleteConnectionInput, _ ...func(*glue.Options)) (*glue.DeleteConnectionOutput, error) {
	m.rec.record("DeleteConnection:" + aws.ToString(params.ConnectionName))
	if err := m.fail("DeleteConnection"); err != nil {
		return nil, err
	}
	return &glue.DeleteConnectionOutput{}, nil
}

func (m *mockGlue) ListDataQualityRulesets(_ context.Context, _ *glue.ListDataQualityRulesetsInput, _ ...func(*glue.Options)) (*glue.ListDataQualityRulesetsOutput, error) {
	m.rec.record("ListDataQualityRulesets")
	if err := m.fail("ListDataQualityRulesets"); err != nil {
		return nil, err
	}
	return &glue.ListDataQualityRulesetsOutput{Rulesets: m.rulesets}, nil
}

func (m *mockGlue) DeleteDataQualityRuleset(_ context.Context, params *glue.DeleteDataQualityRulesetInput, _ ...func(*glue.Options)) (*glue.DeleteDataQualityRulesetOutput, error) {
	m.rec.record("DeleteDataQualityRuleset:" + aws.ToString(params.Name))
	if err := m.fail("DeleteDataQualityRuleset"); err != nil {
		return nil, err
	}
	return &glue.DeleteDataQualityRulesetOutput{}, nil
}

type mockIAM struct {
	rec    *recorder
	failOn map[string]error
}

func (m *mockIAM) fail(op string) error {
	if m.failOn == nil {
		return nil
	}
	return m.failOn[op]
}

func (m *mockIAM) DeleteRolePolicy(_ context.Context, params *iam.DeleteRolePolicyInput, _ ...func(*iam.Options)) (*iam.DeleteRolePolicyOutput, error) {
	m.rec.record("DeleteRolePolicy:" + aws.ToString(params.RoleName) + "/" + aws.ToString(params.PolicyName))
	if err := m.fail("DeleteRolePolicy"); err != nil {
		return nil, err
	}
	return &iam.DeleteRolePolicyOutput{}, nil
}

func (m *mockIAM) DeleteRole(_ context.Context, params *iam.DeleteRoleInput, _ ...func(*iam.Options)) (*iam.DeleteRoleOutput, error) {
	m.rec.record("DeleteRole:" + aws.ToString(params.RoleName))
	if err := m.fail("DeleteRole"); err != nil {
		return nil, err
	}
	return &iam.DeleteRoleOutput{}, nil
}

type mockS3 struct {
	rec   *recorder
	pages []*s3.ListObjectVersionsOutput
	page  int
	err   error

	deleted [][]string
}

func (m *mockS3) GetObject(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	m.rec.record("GetObject")
	return nil, m.err
}

func (m *mockS3) ListObjectVersions(_ context.Context, params *s3.ListObjectVersionsInput, _ ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error) {
	m.rec.record("ListObjectVersions:" + aws.ToString(params.Bucket))
	if m.err != nil {
		return nil, m.err
	}
	if m.page >= len(m.pages) {
		return &s3.ListObjectVersionsOutput{}, nil
	}
	page := m.pages[m.page]
	m.page++
	return page, nil
}

func (m *mockS3) DeleteObjects(_ context.Context, params *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	m.rec.record("DeleteObjects:" + aws.ToString(params.Bucket))
	var keys []string
	for _, obj := range params.Delete.Objects {
		keys = append(keys, aws.ToString(obj.Key)+"@"+aws.ToString(obj.VersionId))
	}
	m.deleted = append(m.deleted, keys)
	return &s3.DeleteObjectsOutput{}, nil
}
