package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/prefgen/internal/prefdoc"
)

const sampleDoc = `= Settings

== Settings Screen
:key: settings_screen

=== General

==== Enable notifications (Y/N)

Show alerts when new mail arrives.

==== Poll Interval
:enumValues: POLL_SLOW, POLL_FAST

How often to check for mail.

* Hourly
* Every 15 minutes (default)
* Manually.
`

func parseSample(t *testing.T) *prefdoc.Document {
	t.Helper()
	doc, err := prefdoc.NewParser().Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	return doc
}

func TestLayoutGolden(t *testing.T) {
	doc := parseSample(t)

	var buf strings.Builder
	require.NoError(t, Layout(&buf, doc))

	want := `<?xml version="1.0" encoding="utf-8"?>
<!-- Generated by prefgen - Do not edit by hand! -->
<PreferenceScreen
    xmlns:android="http://schemas.android.com/apk/res/android"
    android:key="settings_screen" >

    <PreferenceCategory
        android:title="@string/general" >

        <CheckBoxPreference
            android:key="enable_notifications"
            android:title="@string/enable_notifications"
            android:summary="@string/show_alerts_when_new_mail"
            android:defaultValue="false" />

        <ListPreference
            android:key="poll_interval"
            android:title="@string/poll_interval"
            android:summary="@string/how_often_to_check_for"
            android:defaultValue="1"
            android:entries="@array/poll_interval_array"
            android:entryValues="@array/poll_interval_array_values" />

    </PreferenceCategory>

</PreferenceScreen>
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestResourcesGolden(t *testing.T) {
	doc := parseSample(t)

	var buf strings.Builder
	require.NoError(t, Resources(&buf, doc))

	want := `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="enable_notifications">Enable notifications</string>
    <string name="general">General</string>
    <string name="how_often_to_check_for">How often to check for mail</string>
    <string name="poll_interval">Poll Interval</string>
    <string name="show_alerts_when_new_mail">Show alerts when new mail arrives</string>
    <string-array name="poll_interval_array">
        <item>"Hourly"</item>
        <item>"Every 15 minutes"</item>
        <item>"Manually"</item>
    </string-array>
    <string-array name="poll_interval_array_values" translatable="false">
        <item>0</item>
        <item>1</item>
        <item>2</item>
    </string-array>
</resources>
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("resources mismatch (-want +got):\n%s", diff)
	}
}

func TestResourcesEntryCountAndUniqueness(t *testing.T) {
	doc := parseSample(t)

	var buf strings.Builder
	require.NoError(t, Resources(&buf, doc))
	out := buf.String()

	if got := strings.Count(out, "<string name="); got != len(doc.Strings) {
		t.Errorf("expected %d string entries, got %d", len(doc.Strings), got)
	}

	seen := map[string]bool{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "<string name=") {
			continue
		}
		name := strings.SplitN(line, `"`, 3)[1]
		if seen[name] {
			t.Errorf("duplicate string identifier %q", name)
		}
		seen[name] = true
	}
}

func TestSettingsClass(t *testing.T) {
	doc := parseSample(t)

	var buf strings.Builder
	opts := ClassOptions{ClassName: "Settings", Package: "com.example.app"}
	require.NoError(t, SettingsClass(&buf, doc, opts))
	out := buf.String()

	for _, want := range []string{
		"package com.example.app;",
		"public class Settings {",
		`    public static final String PREF_ENABLE_NOTIFICATIONS = "enable_notifications";`,
		`    public static final String PREF_POLL_INTERVAL = "poll_interval";`,
		"    public enum PollIntervalEnum {",
		"        POLL_SLOW,",
		"        POLL_FAST,",
		"    public Settings(SharedPreferences preferences) {",
		"    public boolean getEnableNotifications() {",
		"        return getBoolean(PREF_ENABLE_NOTIFICATIONS, false);",
		"    public void setEnableNotifications(boolean value) {",
		"        putBoolean(PREF_ENABLE_NOTIFICATIONS, value);",
		"    public PollIntervalEnum getPollInterval() {",
		"        return PollIntervalEnum.values()[getEnumInt(PREF_POLL_INTERVAL, 1)];",
		"    public void setPollInterval(PollIntervalEnum value) {",
		"        putEnumInt(PREF_POLL_INTERVAL, value.ordinal());",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("settings class missing %q", want)
		}
	}
}

func TestSettingsClassKeyConstantsSorted(t *testing.T) {
	doc := parseSample(t)
	doc.Keys = append(doc.Keys, "zz.last", "aa.first")

	var buf strings.Builder
	require.NoError(t, SettingsClass(&buf, doc, ClassOptions{ClassName: "Settings"}))
	out := buf.String()

	order := []string{"PREF_AA_FIRST", "PREF_ENABLE_NOTIFICATIONS", "PREF_POLL_INTERVAL", "PREF_ZZ_LAST"}
	last := -1
	for _, name := range order {
		idx := strings.Index(out, name)
		if idx < 0 {
			t.Fatalf("missing key constant %s", name)
		}
		if idx < last {
			t.Errorf("key constant %s out of order", name)
		}
		last = idx
	}

	if strings.Contains(out, "package ") {
		t.Error("no package declaration expected when package is empty")
	}
}

func TestSettingsClassStringDefaultQuoted(t *testing.T) {
	doc, err := prefdoc.NewParser().Parse(strings.NewReader(`= R

== S

=== C

==== Server Name
:defaultValue: imap.example.com
`))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, SettingsClass(&buf, doc, ClassOptions{ClassName: "Settings"}))

	if !strings.Contains(buf.String(), `getString(PREF_SERVER_NAME, "imap.example.com")`) {
		t.Errorf("string default not quoted:\n%s", buf.String())
	}
}

func TestActivityClassGolden(t *testing.T) {
	var buf strings.Builder
	opts := ActivityOptions{
		ClassName:       "SettingsActivity",
		Package:         "com.example.app.ui",
		ResourcePackage: "com.example.app",
	}
	require.NoError(t, ActivityClass(&buf, opts))

	want := `// Generated by prefgen - Do not edit by hand!

package com.example.app.ui;

import android.content.SharedPreferences;

public class SettingsActivity extends android.preference.PreferenceActivity
        implements SharedPreferences.OnSharedPreferenceChangeListener {

    public SettingsActivity() {
        super();
    }

    @Override
    protected void onCreate(android.os.Bundle savedInstanceState) {
        super.onCreate(savedInstanceState);
        addPreferencesFromResource(com.example.app.R.xml.settings);
    }

    @Override
    public void onSharedPreferenceChanged(SharedPreferences p, String k) { }

    protected SharedPreferences getPreferences() {
        return getPreferenceScreen().getSharedPreferences();
    }

    @Override
    protected void onResume() {
        super.onResume();
        getPreferences().registerOnSharedPreferenceChangeListener(this);
    }

    @Override
    protected void onPause() {
        super.onPause();
        getPreferences().unregisterOnSharedPreferenceChangeListener(this);
    }
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("activity mismatch (-want +got):\n%s", diff)
	}
}

func TestActivityClassCustomLayoutResource(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, ActivityClass(&buf, ActivityOptions{
		ClassName:      "PrefsActivity",
		LayoutResource: "prefs",
	}))
	if !strings.Contains(buf.String(), "addPreferencesFromResource(R.xml.prefs);") {
		t.Errorf("layout resource not honored:\n%s", buf.String())
	}
}

// End-to-end: a two-level document with an explicit key directive. The
// settings class must use the declared key, not a derived slug, and the
// resource output must have the summary period stripped.
func TestEndToEndExplicitKey(t *testing.T) {
	doc, err := prefdoc.NewParser().Parse(strings.NewReader(`== Main

==== Foo Bar
:key: foo

Summary text here.
`))
	require.NoError(t, err)

	var settings strings.Builder
	require.NoError(t, SettingsClass(&settings, doc, ClassOptions{ClassName: "Settings"}))
	if !strings.Contains(settings.String(), `public static final String PREF_FOO = "foo";`) {
		t.Errorf("declared key not used:\n%s", settings.String())
	}

	var res strings.Builder
	require.NoError(t, Resources(&res, doc))
	if !strings.Contains(res.String(), ">Summary text here</string>") {
		t.Errorf("summary period not stripped:\n%s", res.String())
	}
}

func TestQuoteAttr(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Low", `"Low"`},
		{"a < b", `"a &lt; b"`},
		{"tom & jerry", `"tom &amp; jerry"`},
		{`say "hi"`, `'say "hi"'`},
		{`both "and" Bob's`, `"both &quot;and&quot; Bob's"`},
	}
	for _, tc := range cases {
		if got := quoteAttr(tc.in); got != tc.want {
			t.Errorf("quoteAttr(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
