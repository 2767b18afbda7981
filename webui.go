package main

// webUIHTML is the single-page web UI served at /. It collects the six
// parameters, calls the JSON API and renders the chart, table, goal and
// scenario views client-side. No external assets.
const webUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ETF Investment Simulator</title>
    <style>
        :root {
            --primary: #3b82f6;
            --primary-dark: #1e3a8a;
            --success: #10b981;
            --danger: #ef4444;
            --bg: #0f172a;
            --panel: #1e293b;
            --card: rgba(255, 255, 255, 0.05);
            --border: rgba(255, 255, 255, 0.1);
            --text: #f1f5f9;
            --text-muted: #93c5fd;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: linear-gradient(135deg, var(--bg) 0%, var(--primary-dark) 100%);
            color: var(--text);
            min-height: 100vh;
        }
        header {
            background: linear-gradient(90deg, var(--primary-dark) 0%, var(--primary) 100%);
            padding: 24px;
            text-align: center;
        }
        header h1 { font-size: 1.5rem; }
        header p { color: var(--text-muted); font-size: 0.9rem; margin-top: 6px; }
        .layout { display: flex; gap: 20px; padding: 20px; max-width: 1400px; margin: 0 auto; }
        .sidebar {
            width: 280px; flex-shrink: 0;
            background: var(--panel); border-radius: 12px; padding: 20px;
            align-self: flex-start;
        }
        .sidebar h2 { font-size: 1rem; margin-bottom: 14px; }
        .field { margin-bottom: 12px; }
        .field label { display: block; font-size: 0.8rem; color: var(--text-muted); margin-bottom: 4px; }
        .field input {
            width: 100%; padding: 8px; border-radius: 6px;
            border: 1px solid var(--border); background: var(--card); color: var(--text);
        }
        button {
            width: 100%; padding: 10px; margin-top: 8px;
            background: var(--primary); color: white; border: none; border-radius: 8px;
            font-weight: 600; cursor: pointer;
        }
        button:hover { background: #2563eb; }
        button:disabled { opacity: 0.5; cursor: wait; }
        .content { flex: 1; min-width: 0; }
        .tabs { display: flex; gap: 8px; margin-bottom: 16px; flex-wrap: wrap; }
        .tab {
            padding: 10px 20px; border-radius: 8px; cursor: pointer;
            background: rgba(59, 130, 246, 0.1); border: 1px solid var(--border);
        }
        .tab.active { background: var(--primary); }
        .card {
            background: var(--card); border: 1px solid var(--border);
            border-radius: 12px; padding: 20px; margin-bottom: 16px;
        }
        .metrics { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; margin-bottom: 16px; }
        .metric { background: var(--card); border: 1px solid var(--border); border-radius: 10px; padding: 14px; }
        .metric .label { font-size: 0.75rem; color: var(--text-muted); }
        .metric .value { font-size: 1.25rem; font-weight: 700; margin-top: 4px; }
        .metric .value.positive { color: var(--success); }
        table { border-collapse: collapse; width: 100%; font-size: 0.82rem; }
        th, td { padding: 6px 10px; text-align: right; border-bottom: 1px solid var(--border); }
        th { color: var(--text-muted); position: sticky; top: 0; background: var(--panel); }
        td:first-child, th:first-child { text-align: left; }
        .table-wrap { max-height: 420px; overflow-y: auto; }
        svg { width: 100%; height: auto; }
        .bar-row { display: flex; align-items: center; gap: 10px; margin: 10px 0; }
        .bar-label { width: 170px; font-size: 0.85rem; text-align: right; color: var(--text-muted); }
        .bar-track { flex: 1; background: rgba(255,255,255,0.06); border-radius: 6px; }
        .bar-fill { height: 28px; border-radius: 6px; color: white; font-size: 0.8rem;
                    line-height: 28px; padding-left: 10px; white-space: nowrap; min-width: 2px; }
        .goal-box { text-align: center; padding: 24px; }
        .goal-big { font-size: 3rem; font-weight: 700; color: var(--text-muted); }
        .goal-error { color: var(--danger); font-weight: 600; }
        .etf-row { display: grid; grid-template-columns: 24px 1fr 90px 90px; gap: 8px; margin-bottom: 8px; align-items: center; }
        .etf-row input[type=text], .etf-row input[type=number] {
            padding: 6px; border-radius: 6px; border: 1px solid var(--border);
            background: var(--card); color: var(--text); width: 100%;
        }
        .error { color: var(--danger); padding: 10px 0; }
        .hidden { display: none; }
        .legend { display: flex; gap: 16px; flex-wrap: wrap; margin-top: 10px; font-size: 0.82rem; }
        .legend span { display: inline-flex; align-items: center; gap: 6px; }
        .swatch { width: 14px; height: 14px; border-radius: 3px; display: inline-block; }
    </style>
</head>
<body>
    <header>
        <h1>ETF Investment Growth Simulator</h1>
        <p>Compound growth with monthly contributions and automatic dividend reinvestment (DRIP)</p>
    </header>

    <div class="layout">
        <div class="sidebar">
            <h2>Investment Parameters</h2>
            <div class="field"><label>Initial Capital (USD)</label><input id="initial" type="number" min="0" step="100" value="10000"></div>
            <div class="field"><label>Monthly Contribution (USD)</label><input id="contribution" type="number" min="0" step="50" value="500"></div>
            <div class="field"><label>Annual Return (%)</label><input id="return" type="number" min="0" step="0.5" value="10"></div>
            <div class="field"><label>Annual Dividends (%)</label><input id="dividends" type="number" min="0" step="0.1" value="2"></div>
            <div class="field"><label>Dividend Withholding (%)</label><input id="withholding" type="number" min="0" max="100" step="1" value="30"></div>
            <div class="field"><label>Horizon (months)</label><input id="months" type="number" min="1" max="360" step="1" value="60"></div>
            <div class="field" id="target-field"><label>Goal Capital (USD)</label><input id="target" type="number" min="0" step="1000" value="100000"></div>
            <button id="run-btn">Run Simulation</button>
            <button id="csv-btn" style="background: rgba(59,130,246,0.25)">Download CSV</button>
            <button id="save-btn" style="background: rgba(59,130,246,0.25)">Save as Defaults</button>
        </div>

        <div class="content">
            <div class="tabs">
                <div class="tab active" data-tab="simulator">Simulator</div>
                <div class="tab" data-tab="compare">Compare ETFs</div>
                <div class="tab" data-tab="goal">Reach a Goal</div>
                <div class="tab" data-tab="sensitivity">Sensitivity</div>
            </div>

            <div id="error" class="error hidden"></div>

            <div id="tab-simulator">
                <div class="metrics">
                    <div class="metric"><div class="label">Total Invested</div><div class="value" id="m-invested">-</div></div>
                    <div class="metric"><div class="label">Final Capital</div><div class="value" id="m-final">-</div></div>
                    <div class="metric"><div class="label">Total Gain</div><div class="value positive" id="m-gain">-</div></div>
                    <div class="metric"><div class="label">Total Return</div><div class="value positive" id="m-return">-</div></div>
                </div>
                <div class="card"><h2>Capital Growth</h2><div id="chart"></div></div>
                <div class="card"><h2>Monthly Detail</h2><div class="table-wrap"><table id="monthly-table"></table></div></div>
            </div>

            <div id="tab-compare" class="hidden">
                <div class="card">
                    <h2>ETFs to Compare</h2>
                    <div id="etf-list"></div>
                </div>
                <div class="card"><h2>Growth Comparison</h2><div id="compare-chart"></div><div class="legend" id="compare-legend"></div></div>
                <div class="card"><h2>Results</h2><table id="compare-table"></table></div>
            </div>

            <div id="tab-goal" class="hidden">
                <div class="card"><div class="goal-box" id="goal-box">Run the simulation to see the time to goal.</div></div>
            </div>

            <div id="tab-sensitivity" class="hidden">
                <div class="card"><h2>Return Sensitivity (-5 / base / +5 points)</h2><div id="sens-bars"></div></div>
            </div>
        </div>
    </div>

    <script>
        let activeTab = 'simulator';
        let etfs = [];

        function params() {
            return {
                initial_capital: parseFloat(document.getElementById('initial').value) || 0,
                monthly_contribution: parseFloat(document.getElementById('contribution').value) || 0,
                annual_return_rate: parseFloat(document.getElementById('return').value) || 0,
                annual_dividend_rate: parseFloat(document.getElementById('dividends').value) || 0,
                withholding_rate: parseFloat(document.getElementById('withholding').value) || 0,
                horizon_months: parseInt(document.getElementById('months').value) || 1
            };
        }

        function money(v) {
            return '$' + v.toLocaleString('en-US', {minimumFractionDigits: 2, maximumFractionDigits: 2});
        }

        function showError(msg) {
            const el = document.getElementById('error');
            el.textContent = msg;
            el.classList.remove('hidden');
        }

        async function post(path, body) {
            document.getElementById('error').classList.add('hidden');
            const res = await fetch(path, {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(body)
            });
            const data = await res.json();
            if (!data.success) {
                showError(data.error || 'Simulation failed');
                return null;
            }
            return data;
        }

        function lineChart(container, curves, maxY) {
            const W = 900, H = 320, P = 40;
            let svg = '<svg viewBox="0 0 ' + W + ' ' + H + '">';
            for (let i = 0; i <= 4; i++) {
                const y = H - P - (H - 2*P) * i / 4;
                const v = maxY * i / 4;
                svg += '<line x1="' + P + '" y1="' + y + '" x2="' + (W-P) + '" y2="' + y +
                       '" stroke="rgba(255,255,255,0.12)" stroke-width="1"/>';
                svg += '<text x="' + (P-6) + '" y="' + (y+4) + '" font-size="11" fill="#93c5fd" text-anchor="end">' +
                       (v >= 1000 ? (v/1000).toFixed(0) + 'k' : v.toFixed(0)) + '</text>';
            }
            for (const c of curves) {
                const n = c.trajectory.length;
                const pts = c.trajectory.map((r, i) => {
                    const x = P + (n > 1 ? (W - 2*P) * i / (n-1) : 0);
                    const y = H - P - (H - 2*P) * r.closing_capital / maxY;
                    return x.toFixed(1) + ',' + y.toFixed(1);
                }).join(' ');
                svg += '<polyline points="' + pts + '" fill="none" stroke="' + (c.color || '#3b82f6') + '" stroke-width="2.5"/>';
            }
            svg += '</svg>';
            container.innerHTML = svg;
        }

        async function runSimulator() {
            const data = await post('/api/simulate', { investment: params() });
            if (!data) return;

            document.getElementById('m-invested').textContent = money(data.total_invested);
            document.getElementById('m-final').textContent = money(data.final_capital);
            document.getElementById('m-gain').textContent = money(data.gain);
            document.getElementById('m-return').textContent = data.total_return.toFixed(2) + '%';

            const maxY = data.trajectory[data.trajectory.length - 1].closing_capital;
            lineChart(document.getElementById('chart'), [{trajectory: data.trajectory}], maxY);

            let html = '<tr><th>Month</th><th>Opening</th><th>Contribution</th><th>Dividends</th><th>Growth</th><th>Closing</th></tr>';
            for (const r of data.trajectory) {
                html += '<tr><td>' + r.month + '</td><td>' + money(r.opening_capital) +
                        '</td><td>' + money(r.contribution) + '</td><td>' + money(r.net_dividends) +
                        '</td><td>' + money(r.growth) + '</td><td>' + money(r.closing_capital) + '</td></tr>';
            }
            document.getElementById('monthly-table').innerHTML = html;
        }

        function renderETFList() {
            const list = document.getElementById('etf-list');
            list.innerHTML = '<div class="etf-row" style="font-size:0.75rem; color: var(--text-muted)">' +
                '<span></span><span>Name</span><span>Return %</span><span>Dividends %</span></div>';
            etfs.forEach((etf, i) => {
                const row = document.createElement('div');
                row.className = 'etf-row';
                row.innerHTML =
                    '<input type="checkbox" ' + (etf.active ? 'checked' : '') + ' data-i="' + i + '" data-k="active">' +
                    '<input type="text" value="' + etf.name + '" data-i="' + i + '" data-k="name">' +
                    '<input type="number" step="0.1" value="' + etf.annual_return + '" data-i="' + i + '" data-k="annual_return">' +
                    '<input type="number" step="0.1" value="' + etf.annual_dividend + '" data-i="' + i + '" data-k="annual_dividend">';
                list.appendChild(row);
            });
            list.querySelectorAll('input').forEach(input => {
                input.addEventListener('change', () => {
                    const i = parseInt(input.dataset.i), k = input.dataset.k;
                    if (isNaN(i)) return;
                    if (k === 'active') etfs[i].active = input.checked;
                    else if (k === 'name') etfs[i].name = input.value;
                    else etfs[i][k] = parseFloat(input.value) || 0;
                });
            });
        }

        async function runCompare() {
            const data = await post('/api/compare', { investment: params(), etfs: etfs });
            if (!data) return;

            const results = data.comparison || [];
            const maxY = Math.max(1, ...results.map(r => r.final_capital));
            lineChart(document.getElementById('compare-chart'), results, maxY);

            document.getElementById('compare-legend').innerHTML = results.map(r =>
                '<span><span class="swatch" style="background:' + (r.color || '#3b82f6') + '"></span>' + r.name + '</span>'
            ).join('');

            let html = '<tr><th>ETF</th><th>Final Capital</th><th>Gain</th></tr>';
            for (const r of results) {
                html += '<tr><td>' + r.name + '</td><td>' + money(r.final_capital) + '</td><td>' + money(r.gain) + '</td></tr>';
            }
            document.getElementById('compare-table').innerHTML = html;
        }

        async function runGoal() {
            const target = parseFloat(document.getElementById('target').value) || 0;
            const data = await post('/api/goal', { investment: params(), target_capital: target });
            if (!data) return;

            const g = data.goal;
            const box = document.getElementById('goal-box');
            if (!g.reached) {
                box.innerHTML = '<p class="goal-error">Goal unreachable within 600 months. ' +
                    'Increase the monthly contribution or the expected return.</p>';
                return;
            }
            const years = Math.floor(g.months / 12), rem = g.months % 12;
            box.innerHTML = '<div class="goal-big">' + years + 'y ' + rem + 'm</div>' +
                '<p>' + g.months + ' months total</p>' +
                '<p style="margin-top:10px">Invested: ' + money(g.total_invested) +
                ' &middot; Estimated gain: ' + money(g.estimated_gain) + '</p>';
        }

        async function runSensitivity() {
            const data = await post('/api/sensitivity', { investment: params(), deltas: [-5, 0, 5] });
            if (!data) return;

            const colors = { 'Pessimistic': '#ef4444', 'Base': '#3b82f6', 'Optimistic': '#10b981' };
            const maxY = Math.max(1, ...data.scenarios.map(s => s.final_capital));
            let html = data.scenarios.map(s =>
                '<div class="bar-row"><div class="bar-label">' + s.label + ' (' +
                s.params.annual_return_rate.toFixed(1) + '%)</div>' +
                '<div class="bar-track"><div class="bar-fill" style="width:' +
                (s.final_capital / maxY * 100).toFixed(1) + '%; background:' +
                (colors[s.label] || '#3b82f6') + '">' + money(s.final_capital) + '</div></div></div>'
            ).join('');

            const base = data.scenarios.find(s => s.delta === 0);
            if (base) {
                const worst = Math.min(...data.scenarios.map(s => s.final_capital));
                const best = Math.max(...data.scenarios.map(s => s.final_capital));
                html += '<p style="margin-top: 1rem; color: var(--text-muted)">' +
                    'Worst case vs base: <strong style="color: #ef4444">-' + money(base.final_capital - worst) + '</strong> &middot; ' +
                    'Best case vs base: <strong style="color: #10b981">+' + money(best - base.final_capital) + '</strong></p>';
            }
            document.getElementById('sens-bars').innerHTML = html;
        }

        async function run() {
            const btn = document.getElementById('run-btn');
            btn.disabled = true;
            try {
                switch (activeTab) {
                    case 'compare': await runCompare(); break;
                    case 'goal': await runGoal(); break;
                    case 'sensitivity': await runSensitivity(); break;
                    default: await runSimulator();
                }
            } catch (err) {
                showError(err.message);
            } finally {
                btn.disabled = false;
            }
        }

        document.querySelectorAll('.tab').forEach(tab => {
            tab.addEventListener('click', () => {
                document.querySelectorAll('.tab').forEach(t => t.classList.remove('active'));
                tab.classList.add('active');
                activeTab = tab.dataset.tab;
                ['simulator', 'compare', 'goal', 'sensitivity'].forEach(name => {
                    document.getElementById('tab-' + name).classList.toggle('hidden', name !== activeTab);
                });
                run();
            });
        });

        document.getElementById('run-btn').addEventListener('click', run);

        document.getElementById('csv-btn').addEventListener('click', () => {
            const compare = activeTab === 'compare';
            fetch('/api/export-csv' + (compare ? '?type=comparison' : ''), {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(compare ? { investment: params(), etfs: etfs } : { investment: params() })
            }).then(res => res.blob()).then(blob => {
                const a = document.createElement('a');
                a.href = URL.createObjectURL(blob);
                a.download = compare ? 'etf_comparison.csv' : 'etf_projection.csv';
                a.click();
            });
        });

        document.getElementById('save-btn').addEventListener('click', async () => {
            const config = {
                investment: params(),
                goal: { target_capital: parseFloat(document.getElementById('target').value) || 0 },
                sensitivity: { deltas: [-5, 0, 5] },
                etfs: etfs
            };
            const res = await fetch('/api/config', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(config)
            });
            const data = await res.json();
            if (!data.success) showError(data.error || 'Save failed');
        });

        // Load config defaults, then run the initial simulation
        fetch('/api/config').then(res => res.json()).then(cfg => {
            if (cfg.investment) {
                document.getElementById('initial').value = cfg.investment.initial_capital;
                document.getElementById('contribution').value = cfg.investment.monthly_contribution;
                document.getElementById('return').value = cfg.investment.annual_return_rate;
                document.getElementById('dividends').value = cfg.investment.annual_dividend_rate;
                document.getElementById('withholding').value = cfg.investment.withholding_rate;
                document.getElementById('months').value = cfg.investment.horizon_months;
            }
            if (cfg.goal) document.getElementById('target').value = cfg.goal.target_capital;
            etfs = cfg.etfs || [];
            renderETFList();
            run();
        }).catch(() => { renderETFList(); run(); });
    </script>
</body>
</html>
`
